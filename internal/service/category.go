package service

import (
	"context"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/store"
)

// CategoryService manages the shared category pool.
type CategoryService struct {
	Store store.Store
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (domain.Category, error) {
	return s.Store.Categories().GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, color string) (domain.Category, error) {
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	id, err := s.Store.Categories().Create(ctx, name, color)
	if err != nil {
		return domain.Category{}, err
	}
	return s.Store.Categories().GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name, color string) (domain.Category, error) {
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	affected, err := s.Store.Categories().Update(ctx, id, name, color)
	if err != nil {
		return domain.Category{}, err
	}
	if affected == 0 {
		return domain.Category{}, store.ErrNotFound
	}
	return s.Store.Categories().GetByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	affected, err := s.Store.Categories().Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
