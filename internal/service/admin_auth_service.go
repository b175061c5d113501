package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	Dashboard string `json:"dashboard"`
}

type AdminAuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CreateAdmin(ctx context.Context, email, password, role string) error
	EnsureSuperAdmin(ctx context.Context, email, password string) error
}

type adminAuthService struct {
	repo   repository.AdminAuthRepository
	secret string
	now    func() time.Time
}

func NewAdminAuthService(repo repository.AdminAuthRepository, jwtSecret string) AdminAuthService {
	return &adminAuthService{repo: repo, secret: jwtSecret, now: time.Now}
}

func (s *adminAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperrors.Unavailable("admin store", err)
	}
	if admin == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, admin.ID, admin.Email, admin.Role, s.now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		Role:      admin.Role,
		Dashboard: DashboardPath(admin.Role, SectionHome),
	}, nil
}

func (s *adminAuthService) CreateAdmin(ctx context.Context, email, password, role string) error {
	email = strings.TrimSpace(email)
	var fields []string
	if email == "" {
		fields = append(fields, "email")
	}
	if len(password) < 8 {
		fields = append(fields, "password")
	}
	if role == "" {
		role = auth.RoleAdmin
	}
	if !auth.ValidRole(role) {
		fields = append(fields, "role")
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields, Message: "invalid admin: " + strings.Join(fields, ", ")}
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return apperrors.Unavailable("admin store", err)
	}
	if existing != nil {
		return apperrors.NewHTTPError(http.StatusConflict, fmt.Sprintf("admin %s already exists", email))
	}
	return s.repo.CreateNewUser(ctx, email, password, role)
}

// EnsureSuperAdmin creates the first super-admin from configuration when the
// database has none yet.
func (s *adminAuthService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.repo.CountByRole(ctx, auth.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if err := s.CreateAdmin(ctx, email, password, auth.RoleSuperAdmin); err != nil {
		return err
	}
	log.Printf("Created super-admin %s", email)
	return nil
}
