package repositories

import (
	"context"
	"time"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/models"
)

type materialMapper struct{}

func (materialMapper) Table() string      { return "material" }
func (materialMapper) PrimaryKey() string { return "id" }

func (materialMapper) Scan(row Row) models.Material {
	return models.Material{
		ID:          row.Int("id"),
		Title:       row.String("title"),
		Description: row.StringPtr("description"),
		Text:        row.StringPtr("text"),
		Author:      row.String("author"),
		Category:    row.Int("category"),
		Theme:       row.Int("theme"),
		CreatedAt:   row.TimePtr("created_at"),
		UpdatedAt:   row.TimePtr("updated_at"),
	}
}

// MaterialRepository handles material rows and their joined detail views.
type MaterialRepository struct {
	*Repository[models.Material]
}

func NewMaterialRepository(db *database.DB) *MaterialRepository {
	return &MaterialRepository{Repository: NewRepository[models.Material](db, materialMapper{})}
}

func (r *MaterialRepository) Create(ctx context.Context, patch models.MaterialPatch) (*models.Material, error) {
	return r.Repository.Create(ctx, materialRow(patch))
}

func (r *MaterialRepository) Update(ctx context.Context, id int, patch models.MaterialPatch) (*models.Material, error) {
	row := materialRow(patch)
	row["updated_at"] = time.Now().UTC()
	return r.Repository.Update(ctx, id, row)
}

func (r *MaterialRepository) FindByCategory(ctx context.Context, categoryID int) ([]models.Material, error) {
	return r.FindBy(ctx, Where{"category": categoryID})
}

func (r *MaterialRepository) FindByTheme(ctx context.Context, themeID int) ([]models.Material, error) {
	return r.FindBy(ctx, Where{"theme": themeID})
}

const materialDetailsColumns = `
	m.*,
	c.id AS category_id, c.name AS category_name, c.description AS category_description, c.theme AS category_theme,
	t.id AS theme_id, t.name AS theme_name, t.description AS theme_description`

const materialByIDWithDetailsQuery = `
	SELECT ` + materialDetailsColumns + `
	FROM material m
	JOIN category c ON m.category = c.id
	JOIN theme t ON m.theme = t.id
	WHERE m.id = $1`

const materialsWithDetailsQuery = `
	SELECT ` + materialDetailsColumns + `
	FROM material m
	JOIN category c ON m.category = c.id
	JOIN theme t ON m.theme = t.id
	ORDER BY m.created_at DESC`

// FindByIDWithDetails returns the material joined with its category (and
// that category's theme) and its own theme, or nil.
func (r *MaterialRepository) FindByIDWithDetails(ctx context.Context, id int) (*models.MaterialWithDetails, error) {
	rows, err := r.queryRows(ctx, materialByIDWithDetailsQuery, []any{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	view := scanMaterialWithDetails(rows[0])
	return &view, nil
}

// FindAllWithDetails returns every material as a joined detail view,
// newest first.
func (r *MaterialRepository) FindAllWithDetails(ctx context.Context) ([]models.MaterialWithDetails, error) {
	rows, err := r.queryRows(ctx, materialsWithDetailsQuery, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.MaterialWithDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, scanMaterialWithDetails(row))
	}
	return out, nil
}

func scanMaterialWithDetails(row Row) models.MaterialWithDetails {
	theme := models.Theme{
		ID:          row.Int("theme_id"),
		Name:        row.String("theme_name"),
		Description: row.StringPtr("theme_description"),
	}
	return models.MaterialWithDetails{
		Material: materialMapper{}.Scan(row),
		CategoryDetails: models.CategoryWithTheme{
			Category: models.Category{
				ID:          row.Int("category_id"),
				Name:        row.String("category_name"),
				Description: row.StringPtr("category_description"),
				Theme:       row.Int("category_theme"),
			},
			ThemeDetails: theme,
		},
		ThemeDetails: theme,
	}
}

func materialRow(patch models.MaterialPatch) Row {
	row := Row{}
	if patch.Title != nil {
		row["title"] = *patch.Title
	}
	if patch.Description != nil {
		row["description"] = *patch.Description
	}
	if patch.Text != nil {
		row["text"] = *patch.Text
	}
	if patch.Author != nil {
		row["author"] = *patch.Author
	}
	if patch.Category != nil {
		row["category"] = *patch.Category
	}
	if patch.Theme != nil {
		row["theme"] = *patch.Theme
	}
	return row
}
