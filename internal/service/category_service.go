package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

type UpdateCategoryInput struct {
	CategoryID  string
	Name        *string
	Slug        *string
	Description *string
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := validation.ValidateCategoryName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCategorySlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDescription(in.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, params models.PageParams) ([]models.Category, int64, error) {
	return s.categoryRepo.List(ctx, params)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// ResolveByIDs returns the categories for the given ids, omitting unknown
// ids without error. Callers needing strict resolution compare lengths.
func (s *CategoryService) ResolveByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	return s.categoryRepo.GetByIDs(ctx, ids)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidateCategoryName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		category.Name = *in.Name
	}
	if in.Slug != nil {
		if err := validation.ValidateCategorySlug(*in.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		category.Slug = *in.Slug
	}
	if in.Description != nil {
		if err := validation.ValidateDescription(*in.Description); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		category.Description = *in.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
