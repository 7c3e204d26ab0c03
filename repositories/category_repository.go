package repositories

import (
	"context"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/models"
)

type categoryMapper struct{}

func (categoryMapper) Table() string      { return "category" }
func (categoryMapper) PrimaryKey() string { return "id" }

func (categoryMapper) Scan(row Row) models.Category {
	return models.Category{
		ID:          row.Int("id"),
		Name:        row.String("name"),
		Description: row.StringPtr("description"),
		Theme:       row.Int("theme"),
	}
}

// CategoryRepository handles category rows.
type CategoryRepository struct {
	*Repository[models.Category]
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{Repository: NewRepository[models.Category](db, categoryMapper{})}
}

func (r *CategoryRepository) Create(ctx context.Context, patch models.CategoryPatch) (*models.Category, error) {
	return r.Repository.Create(ctx, categoryRow(patch))
}

func (r *CategoryRepository) Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error) {
	return r.Repository.Update(ctx, id, categoryRow(patch))
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return r.FindOneBy(ctx, Where{"name": name})
}

func (r *CategoryRepository) FindByTheme(ctx context.Context, themeID int) ([]models.Category, error) {
	return r.FindBy(ctx, Where{"theme": themeID})
}

const categoryWithThemeQuery = `
	SELECT c.*, t.id AS theme_id, t.name AS theme_name, t.description AS theme_description
	FROM category c
	JOIN theme t ON c.theme = t.id
	WHERE c.id = $1`

// FindByIDWithTheme assembles the category together with its theme in one
// query instead of a follow-up lookup.
func (r *CategoryRepository) FindByIDWithTheme(ctx context.Context, id int) (*models.CategoryWithTheme, error) {
	rows, err := r.queryRows(ctx, categoryWithThemeQuery, []any{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	view := scanCategoryWithTheme(rows[0])
	return &view, nil
}

func scanCategoryWithTheme(row Row) models.CategoryWithTheme {
	return models.CategoryWithTheme{
		Category: categoryMapper{}.Scan(row),
		ThemeDetails: models.Theme{
			ID:          row.Int("theme_id"),
			Name:        row.String("theme_name"),
			Description: row.StringPtr("theme_description"),
		},
	}
}

func categoryRow(patch models.CategoryPatch) Row {
	row := Row{}
	if patch.Name != nil {
		row["name"] = *patch.Name
	}
	if patch.Description != nil {
		row["description"] = *patch.Description
	}
	if patch.Theme != nil {
		row["theme"] = *patch.Theme
	}
	return row
}
