package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
)

// UploadFolders are the media folders the admin panel may upload into.
var UploadFolders = []string{"home", "destinations", "day-tours", "blogs", "taxis", "contact"}

type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}

type CloudinaryStore struct {
	cld        *cloudinary.Cloudinary
	rootFolder string
}

// NewCloudinaryStore returns a store that answers ServiceUnavailable when
// cloudinaryURL is empty, so the rest of the admin panel keeps working.
func NewCloudinaryStore(cloudinaryURL, rootFolder string) (*CloudinaryStore, error) {
	s := &CloudinaryStore{rootFolder: rootFolder}
	if cloudinaryURL == "" {
		return s, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("error configuring cloudinary: %w", err)
	}
	s.cld = cld
	return s, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	if err := ValidateUploadFolder(folder); err != nil {
		return "", err
	}
	if s.cld == nil {
		return "", apperrors.Unavailable("media storage", errors.New("CLOUDINARY_URL not set"))
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       path.Join(s.rootFolder, folder),
		PublicID:     publicID(filename),
		ResourceType: "auto",
	})
	if err != nil {
		return "", apperrors.Unavailable("media storage", err)
	}
	if resp.Error.Message != "" {
		return "", apperrors.Unavailable("media storage", errors.New(resp.Error.Message))
	}
	return resp.SecureURL, nil
}

func ValidateUploadFolder(folder string) error {
	for _, f := range UploadFolders {
		if f == folder {
			return nil
		}
	}
	return &apperrors.ValidationError{
		Fields:  []string{"folder"},
		Message: fmt.Sprintf("unknown upload folder %q", folder),
	}
}

// publicID strips the extension; cloudinary adds its own.
func publicID(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "." || base == "/" {
		return ""
	}
	return strings.ReplaceAll(base, " ", "-")
}
