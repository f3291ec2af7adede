package service

import (
	"context"

	"github.com/Skotchmaster/category_service/internal/models"
	"github.com/Skotchmaster/category_service/internal/repo"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) GetCategories(ctx context.Context, sortBy string) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx, sortBy)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.Repo.GetCategoryByID(ctx, id)
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.Repo.GetCategoryByName(ctx, name)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	return s.Repo.CreateCategory(ctx, name)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) error {
	return s.Repo.UpdateCategory(ctx, id, name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.Repo.DeleteCategory(ctx, id)
}
