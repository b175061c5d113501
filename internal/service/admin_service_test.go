package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/super-admin/blogs", DashboardPath(auth.RoleSuperAdmin, SectionBlogs))
	assert.Equal(t, "/admin/blogs", DashboardPath(auth.RoleAdmin, SectionBlogs))
	assert.Equal(t, "/admin/home", DashboardPath("", SectionHome))
}

func TestAdminService_AllowedSections(t *testing.T) {
	repo := new(mocks.MockContentRepository[entities.AllowedSections])
	svc := NewAdminService(NewContentService[entities.AllowedSections]("allowed sections", repo), nil)
	ctx := context.Background()
	repo.On("First", ctx).Return(nil, nil).Once()

	sections, err := svc.AllowedSections(ctx)
	require.NoError(t, err)
	assert.Empty(t, sections.Sections)

	_, err = svc.SetAllowedSections(ctx, []string{"blogs", "payroll"})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)

	repo.On("First", ctx).Return(nil, nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(a *entities.AllowedSections) bool {
		return assert.ObjectsAreEqual([]string{"blogs", "taxis"}, a.Sections)
	})).Return(&entities.AllowedSections{Sections: []string{"blogs", "taxis"}}, nil)

	saved, err := svc.SetAllowedSections(ctx, []string{"blogs", " taxis", "blogs"})
	require.NoError(t, err)
	assert.True(t, saved.Allows("taxis"))
	assert.False(t, saved.Allows("prices"))
}

func TestAdminService_ListBookings(t *testing.T) {
	lister := new(mocks.MockBookingLister)
	svc := NewAdminService(nil, lister)
	ctx := context.Background()

	lister.On("ListBookings", ctx, entities.BookingFilter{Status: "confirmed", Limit: 100}).
		Return([]db.Booking{{ConfirmationID: "c1"}}, int64(1), nil)
	list, err := svc.ListBookings(ctx, entities.BookingFilter{Status: "confirmed", Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 100, list.Limit)

	lister.On("ListBookings", ctx, entities.BookingFilter{Limit: defaultBookingsLimit}).
		Return(nil, int64(0), errors.New("db down"))
	_, err = svc.ListBookings(ctx, entities.BookingFilter{})
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestAdminAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &db.Admin{ID: 3, Email: "ops@example.com", PasswordHash: string(hash), Role: auth.RoleSuperAdmin}

	tests := []struct {
		name     string
		email    string
		password string
		found    *db.Admin
		wantErr  error
	}{
		{"valid", "ops@example.com", "s3cret-pass", admin, nil},
		{"wrong password", "ops@example.com", "nope", admin, apperrors.ErrInvalidCredentials},
		{"unknown email", "who@example.com", "s3cret-pass", nil, apperrors.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockAdminAuthRepository)
			ctx := context.Background()
			if tt.found == nil {
				repo.On("GetByEmail", ctx, tt.email).Return(nil, nil)
			} else {
				repo.On("GetByEmail", ctx, tt.email).Return(tt.found, nil)
			}
			svc := NewAdminAuthService(repo, "secret")

			result, err := svc.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/super-admin/home", result.Dashboard)
			claims, err := auth.ParseToken("secret", result.Token)
			require.NoError(t, err)
			assert.Equal(t, auth.RoleSuperAdmin, claims.Role)
			assert.Equal(t, 3, claims.AdminID)
		})
	}
}

func TestAdminAuthService_CreateAdmin(t *testing.T) {
	repo := new(mocks.MockAdminAuthRepository)
	svc := NewAdminAuthService(repo, "secret")
	ctx := context.Background()

	err := svc.CreateAdmin(ctx, "", "short", "owner")
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "password", "role"}, verr.Fields)

	repo.On("GetByEmail", ctx, "taken@example.com").Return(&db.Admin{ID: 1}, nil)
	err = svc.CreateAdmin(ctx, "taken@example.com", "long-enough", "")
	assert.Equal(t, 409, apperrors.StatusFor(err))

	repo.On("GetByEmail", ctx, "new@example.com").Return(nil, nil)
	repo.On("CreateNewUser", ctx, "new@example.com", "long-enough", auth.RoleAdmin).Return(nil)
	require.NoError(t, svc.CreateAdmin(ctx, "new@example.com", "long-enough", ""))
	repo.AssertExpectations(t)
}

func TestAdminAuthService_EnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()

	existing := new(mocks.MockAdminAuthRepository)
	existing.On("CountByRole", ctx, auth.RoleSuperAdmin).Return(1, nil)
	require.NoError(t, NewAdminAuthService(existing, "secret").EnsureSuperAdmin(ctx, "root@example.com", "long-enough"))
	existing.AssertNotCalled(t, "CreateNewUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	empty := new(mocks.MockAdminAuthRepository)
	empty.On("CountByRole", ctx, auth.RoleSuperAdmin).Return(0, nil)
	empty.On("GetByEmail", ctx, "root@example.com").Return(nil, nil)
	empty.On("CreateNewUser", ctx, "root@example.com", "long-enough", auth.RoleSuperAdmin).Return(nil)
	require.NoError(t, NewAdminAuthService(empty, "secret").EnsureSuperAdmin(ctx, "root@example.com", "long-enough"))
	empty.AssertExpectations(t)

	unset := new(mocks.MockAdminAuthRepository)
	require.NoError(t, NewAdminAuthService(unset, "secret").EnsureSuperAdmin(ctx, "", ""))
	unset.AssertNotCalled(t, "CountByRole", mock.Anything, mock.Anything)
}
