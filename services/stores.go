// Package services holds the business rules between the HTTP controllers
// and the repositories.
package services

import (
	"context"

	"github.com/methodhub/backend/models"
)

// Store interfaces consumed by the services. The concrete repositories
// satisfy them; tests substitute fakes.

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, patch models.UserPatch) (*models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

type ThemeStore interface {
	FindAll(ctx context.Context) ([]models.Theme, error)
	FindByID(ctx context.Context, id int) (*models.Theme, error)
	FindByName(ctx context.Context, name string) (*models.Theme, error)
	Create(ctx context.Context, patch models.ThemePatch) (*models.Theme, error)
	Update(ctx context.Context, id int, patch models.ThemePatch) (*models.Theme, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByTheme(ctx context.Context, themeID int) ([]models.Category, error)
	FindByIDWithTheme(ctx context.Context, id int) (*models.CategoryWithTheme, error)
	Create(ctx context.Context, patch models.CategoryPatch) (*models.Category, error)
	Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MaterialStore interface {
	FindByID(ctx context.Context, id int) (*models.Material, error)
	FindByIDWithDetails(ctx context.Context, id int) (*models.MaterialWithDetails, error)
	FindAllWithDetails(ctx context.Context) ([]models.MaterialWithDetails, error)
	FindByCategory(ctx context.Context, categoryID int) ([]models.Material, error)
	FindByTheme(ctx context.Context, themeID int) ([]models.Material, error)
	Create(ctx context.Context, patch models.MaterialPatch) (*models.Material, error)
	Update(ctx context.Context, id int, patch models.MaterialPatch) (*models.Material, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, materialID, userID int) (*models.Favorite, error)
	Remove(ctx context.Context, materialID, userID int) (bool, error)
	IsFavorite(ctx context.Context, materialID, userID int) (bool, error)
	FindByUser(ctx context.Context, userID int) ([]models.Favorite, error)
}
