package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methodhub/backend/models"
)

var materialDetailCols = []string{
	"id", "title", "description", "text", "author", "category", "theme", "created_at", "updated_at",
	"category_id", "category_name", "category_description", "category_theme",
	"theme_id", "theme_name", "theme_description",
}

func TestMaterialFindByIDWithDetails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaterialRepository(db)

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT[\s\S]+FROM material m\s+JOIN category c ON m\.category = c\.id\s+JOIN theme t ON m\.theme = t\.id\s+WHERE m\.id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(materialDetailCols).AddRow(
			int64(5), "Таблица умножения", "карточки", nil, "Иван Петров", int64(3), int64(1), created, created,
			int64(3), "Математика", nil, int64(1),
			int64(1), "Начальная школа", nil,
		))

	view, err := repo.FindByIDWithDetails(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, 5, view.ID)
	assert.Equal(t, "Таблица умножения", view.Title)
	assert.Equal(t, "Иван Петров", view.Author)
	require.NotNil(t, view.CreatedAt)
	assert.True(t, created.Equal(*view.CreatedAt))

	assert.Equal(t, 3, view.CategoryDetails.ID)
	assert.Equal(t, "Математика", view.CategoryDetails.Name)
	assert.Equal(t, 1, view.CategoryDetails.Theme)
	assert.Equal(t, "Начальная школа", view.CategoryDetails.ThemeDetails.Name)
	assert.Equal(t, view.ThemeDetails, view.CategoryDetails.ThemeDetails)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialFindByIDWithDetailsMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaterialRepository(db)

	mock.ExpectQuery(`SELECT[\s\S]+WHERE m\.id = \$1`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(materialDetailCols))

	view, err := repo.FindByIDWithDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, view)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialFindAllWithDetailsOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaterialRepository(db)

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT[\s\S]+FROM material m[\s\S]+ORDER BY m\.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(materialDetailCols).
			AddRow(
				int64(2), "Новый материал", nil, nil, "Анна", int64(3), int64(1), newer, newer,
				int64(3), "Математика", nil, int64(1),
				int64(1), "Начальная школа", nil,
			).
			AddRow(
				int64(1), "Старый материал", nil, nil, "Анна", int64(3), int64(1), older, older,
				int64(3), "Математика", nil, int64(1),
				int64(1), "Начальная школа", nil,
			))

	views, err := repo.FindAllWithDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Новый материал", views[0].Title)
	assert.Equal(t, "Старый материал", views[1].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMaterialUpdateStampsUpdatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaterialRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`UPDATE material SET title = \$1, updated_at = \$2 WHERE id = \$3 RETURNING \*`).
		WithArgs("Новое название", sqlmock.AnyArg(), 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "text", "author", "category", "theme", "created_at", "updated_at",
		}).AddRow(int64(5), "Новое название", nil, nil, "Анна", int64(3), int64(1), now, now))

	material, err := repo.Update(context.Background(), 5, models.MaterialPatch{Title: strPtr("Новое название")})
	require.NoError(t, err)
	require.NotNil(t, material)
	assert.Equal(t, "Новое название", material.Title)

	require.NoError(t, mock.ExpectationsWereMet())
}
