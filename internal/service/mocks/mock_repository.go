package mocks

import (
	"context"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/stretchr/testify/mock"
)

// MockContentRepository is a mock implementation of repository.ContentRepository
type MockContentRepository[T any] struct {
	mock.Mock
}

func (m *MockContentRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) List(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockContentRepository[T]) Create(ctx context.Context, payload *T) (*T, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) Update(ctx context.Context, id string, payload *T) (*T, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository[T]) First(ctx context.Context) (*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) Upsert(ctx context.Context, payload *T) (*T, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) AddComment(ctx context.Context, blogID string, comment entities.Comment) error {
	args := m.Called(ctx, blogID, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, blogID, commentID string) error {
	args := m.Called(ctx, blogID, commentID)
	return args.Error(0)
}

type MockAdminAuthRepository struct {
	mock.Mock
}

func (m *MockAdminAuthRepository) GetByEmail(ctx context.Context, email string) (*db.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Admin), args.Error(1)
}

func (m *MockAdminAuthRepository) CreateNewUser(ctx context.Context, email, password, role string) error {
	args := m.Called(ctx, email, password, role)
	return args.Error(0)
}

func (m *MockAdminAuthRepository) CountByRole(ctx context.Context, role string) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}
