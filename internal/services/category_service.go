package services

import (
	"context"
	"strings"

	"gotham/internal/models/db_models"
	"gotham/internal/repositories"
	"gotham/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	CreateCategory(ctx context.Context, name string) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return utils.ErrInvalidInput
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrCategoryExists
	}

	if err := s.categoryRepo.CreateCategory(ctx, db_models.Category{Name: name}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
