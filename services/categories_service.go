package services

import (
	"context"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
)

type CreateCategoryInput struct {
	Name        string
	Description *string
	Theme       int
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Theme       *int
}

// CategoriesService is CRUD over categories with two rules: the referenced
// theme must exist, and the name must be unique.
type CategoriesService struct {
	categories CategoryStore
	themes     ThemeStore
}

func NewCategoriesService(categories CategoryStore, themes ThemeStore) *CategoriesService {
	return &CategoriesService{categories: categories, themes: themes}
}

func (s *CategoriesService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoriesService) FindOne(ctx context.Context, id int) (*models.CategoryWithTheme, error) {
	category, err := s.categories.FindByIDWithTheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("category with ID %d not found", id)
	}
	return category, nil
}

func (s *CategoriesService) FindByTheme(ctx context.Context, themeID int) ([]models.Category, error) {
	return s.categories.FindByTheme(ctx, themeID)
}

// Create checks the theme reference before anything is written.
func (s *CategoriesService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	theme, err := s.themes.FindByID(ctx, in.Theme)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, apperr.NotFound("theme with ID %d not found", in.Theme)
	}

	existing, err := s.categories.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("category with name %q already exists", in.Name)
	}

	return s.categories.Create(ctx, models.CategoryPatch{
		Name:        &in.Name,
		Description: in.Description,
		Theme:       &in.Theme,
	})
}

func (s *CategoriesService) Update(ctx context.Context, id int, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("category with ID %d not found", id)
	}

	if in.Name == nil && in.Description == nil && in.Theme == nil {
		return category, nil
	}

	if in.Theme != nil {
		theme, err := s.themes.FindByID(ctx, *in.Theme)
		if err != nil {
			return nil, err
		}
		if theme == nil {
			return nil, apperr.NotFound("theme with ID %d not found", *in.Theme)
		}
	}

	if in.Name != nil {
		existing, err := s.categories.FindByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("category with name %q already exists", *in.Name)
		}
	}

	updated, err := s.categories.Update(ctx, id, models.CategoryPatch{
		Name:        in.Name,
		Description: in.Description,
		Theme:       in.Theme,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("category with ID %d not found", id)
	}
	return updated, nil
}

// Remove deletes a category. Categories that still have materials are
// protected by the foreign keys and surface as a conflict.
func (s *CategoriesService) Remove(ctx context.Context, id int) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.NotFound("category with ID %d not found", id)
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("category with ID %d not found", id)
	}
	return nil
}
