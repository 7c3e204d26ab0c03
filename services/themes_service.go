package services

import (
	"context"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
)

type CreateThemeInput struct {
	Name        string
	Description *string
}

type UpdateThemeInput struct {
	Name        *string
	Description *string
}

// ThemesService is CRUD over the top-level taxonomy with a unique-name rule.
type ThemesService struct {
	themes ThemeStore
}

func NewThemesService(themes ThemeStore) *ThemesService {
	return &ThemesService{themes: themes}
}

func (s *ThemesService) FindAll(ctx context.Context) ([]models.Theme, error) {
	return s.themes.FindAll(ctx)
}

func (s *ThemesService) FindOne(ctx context.Context, id int) (*models.Theme, error) {
	theme, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, apperr.NotFound("theme with ID %d not found", id)
	}
	return theme, nil
}

func (s *ThemesService) Create(ctx context.Context, in CreateThemeInput) (*models.Theme, error) {
	existing, err := s.themes.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("theme with name %q already exists", in.Name)
	}
	return s.themes.Create(ctx, models.ThemePatch{Name: &in.Name, Description: in.Description})
}

func (s *ThemesService) Update(ctx context.Context, id int, in UpdateThemeInput) (*models.Theme, error) {
	theme, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, apperr.NotFound("theme with ID %d not found", id)
	}

	if in.Name == nil && in.Description == nil {
		return theme, nil
	}

	if in.Name != nil {
		existing, err := s.themes.FindByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("theme with name %q already exists", *in.Name)
		}
	}

	updated, err := s.themes.Update(ctx, id, models.ThemePatch{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("theme with ID %d not found", id)
	}
	return updated, nil
}

// Remove deletes a theme. A theme that still has categories or materials is
// protected by the foreign keys and surfaces as a conflict.
func (s *ThemesService) Remove(ctx context.Context, id int) error {
	theme, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if theme == nil {
		return apperr.NotFound("theme with ID %d not found", id)
	}

	deleted, err := s.themes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("theme with ID %d not found", id)
	}
	return nil
}
