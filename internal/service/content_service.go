package service

import (
	"context"
	"fmt"

	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/repository"
)

// ContentService serves one content entity of the site.
type ContentService[T any] struct {
	name       string
	repo       repository.ContentRepository[T]
	beforeSave func(ctx context.Context, doc *T) error
	afterSave  func(ctx context.Context)
}

type ContentOption[T any] func(*ContentService[T])

// WithBeforeSave runs hook on every create, update and singleton save.
func WithBeforeSave[T any](hook func(ctx context.Context, doc *T) error) ContentOption[T] {
	return func(s *ContentService[T]) { s.beforeSave = hook }
}

// WithAfterSave runs hook after every successful write, deletes included.
func WithAfterSave[T any](hook func(ctx context.Context)) ContentOption[T] {
	return func(s *ContentService[T]) { s.afterSave = hook }
}

func NewContentService[T any](name string, repo repository.ContentRepository[T], opts ...ContentOption[T]) *ContentService[T] {
	s := &ContentService[T]{name: name, repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ContentService[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s %s: %w", s.name, id, apperrors.ErrNotFound)
	}
	return doc, nil
}

func (s *ContentService[T]) List(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	return s.repo.List(ctx, filter)
}

func (s *ContentService[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if err := s.runBeforeSave(ctx, doc); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.runAfterSave(ctx)
	return created, nil
}

func (s *ContentService[T]) Update(ctx context.Context, id string, doc *T) (*T, error) {
	if err := s.runBeforeSave(ctx, doc); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, doc)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.name, id, err)
	}
	s.runAfterSave(ctx)
	return updated, nil
}

func (s *ContentService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s %s: %w", s.name, id, err)
	}
	s.runAfterSave(ctx)
	return nil
}

// Current returns the document of a singleton entity (home, contact, ...).
func (s *ContentService[T]) Current(ctx context.Context) (*T, error) {
	doc, err := s.repo.First(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", s.name, apperrors.ErrNotFound)
	}
	return doc, nil
}

func (s *ContentService[T]) Save(ctx context.Context, doc *T) (*T, error) {
	if err := s.runBeforeSave(ctx, doc); err != nil {
		return nil, err
	}
	saved, err := s.repo.Upsert(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.runAfterSave(ctx)
	return saved, nil
}

// Edit loads a document, lets edit change it in place and stores it again.
// An empty id addresses the singleton document.
func (s *ContentService[T]) Edit(ctx context.Context, id string, edit func(doc *T) error) (*T, error) {
	var doc *T
	var err error
	if id == "" {
		doc, err = s.repo.First(ctx)
		if err == nil && doc == nil {
			doc = new(T)
		}
	} else {
		doc, err = s.Get(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if err := edit(doc); err != nil {
		return nil, err
	}
	if id == "" {
		return s.Save(ctx, doc)
	}
	return s.Update(ctx, id, doc)
}

func (s *ContentService[T]) runBeforeSave(ctx context.Context, doc *T) error {
	if s.beforeSave == nil {
		return nil
	}
	return s.beforeSave(ctx, doc)
}

func (s *ContentService[T]) runAfterSave(ctx context.Context) {
	if s.afterSave != nil {
		s.afterSave(ctx)
	}
}
