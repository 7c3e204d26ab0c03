package repositories

import (
	"context"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/models"
)

type themeMapper struct{}

func (themeMapper) Table() string      { return "theme" }
func (themeMapper) PrimaryKey() string { return "id" }

func (themeMapper) Scan(row Row) models.Theme {
	return models.Theme{
		ID:          row.Int("id"),
		Name:        row.String("name"),
		Description: row.StringPtr("description"),
	}
}

// ThemeRepository handles theme rows.
type ThemeRepository struct {
	*Repository[models.Theme]
}

func NewThemeRepository(db *database.DB) *ThemeRepository {
	return &ThemeRepository{Repository: NewRepository[models.Theme](db, themeMapper{})}
}

func (r *ThemeRepository) Create(ctx context.Context, patch models.ThemePatch) (*models.Theme, error) {
	return r.Repository.Create(ctx, themeRow(patch))
}

func (r *ThemeRepository) Update(ctx context.Context, id int, patch models.ThemePatch) (*models.Theme, error) {
	return r.Repository.Update(ctx, id, themeRow(patch))
}

func (r *ThemeRepository) FindByName(ctx context.Context, name string) (*models.Theme, error) {
	return r.FindOneBy(ctx, Where{"name": name})
}

func themeRow(patch models.ThemePatch) Row {
	row := Row{}
	if patch.Name != nil {
		row["name"] = *patch.Name
	}
	if patch.Description != nil {
		row["description"] = *patch.Description
	}
	return row
}
