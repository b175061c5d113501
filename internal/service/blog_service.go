package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/repository"
)

const maxCommentLength = 2000

type BlogService struct {
	Blogs    *ContentService[entities.Blog]
	comments repository.CommentRepository
	now      func() time.Time
}

func NewBlogService(blogs *ContentService[entities.Blog], comments repository.CommentRepository) *BlogService {
	return &BlogService{Blogs: blogs, comments: comments, now: time.Now}
}

func (s *BlogService) AddComment(ctx context.Context, blogID string, c entities.Comment) (*entities.Comment, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)

	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	if len(c.Message) > maxCommentLength {
		return nil, &apperrors.ValidationError{
			Fields:  []string{"message"},
			Message: fmt.Sprintf("comment is longer than %d characters", maxCommentLength),
		}
	}

	c.ID = primitive.NewObjectID()
	c.CreatedAt = s.now().UTC()
	if err := s.comments.AddComment(ctx, blogID, c); err != nil {
		return nil, fmt.Errorf("blog %s: %w", blogID, err)
	}
	return &c, nil
}

func (s *BlogService) DeleteComment(ctx context.Context, blogID, commentID string) error {
	if err := s.comments.DeleteComment(ctx, blogID, commentID); err != nil {
		return fmt.Errorf("comment %s of blog %s: %w", commentID, blogID, err)
	}
	return nil
}
