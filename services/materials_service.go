package services

import (
	"context"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
)

// CreateMaterialInput is a new material. Author is not accepted from the
// caller; it is stamped from the creating user's current display name.
type CreateMaterialInput struct {
	Title       string
	Description *string
	Text        *string
	Category    int
	Theme       int
}

type UpdateMaterialInput struct {
	Title       *string
	Description *string
	Text        *string
	Category    *int
	Theme       *int
}

// MaterialsService owns the material lifecycle, favorite toggling and the
// name-equality ownership rule.
type MaterialsService struct {
	materials  MaterialStore
	favorites  FavoriteStore
	users      UserStore
	categories CategoryStore
	themes     ThemeStore
}

func NewMaterialsService(materials MaterialStore, favorites FavoriteStore, users UserStore, categories CategoryStore, themes ThemeStore) *MaterialsService {
	return &MaterialsService{
		materials:  materials,
		favorites:  favorites,
		users:      users,
		categories: categories,
		themes:     themes,
	}
}

// Create persists a material authored by the requesting user. The author
// column gets the user's display name as it is right now; it is not
// updated if the user is renamed later.
func (s *MaterialsService) Create(ctx context.Context, in CreateMaterialInput, userID int) (*models.MaterialWithDetails, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user with ID %d not found", userID)
	}
	if err := s.checkReferences(ctx, &in.Category, &in.Theme); err != nil {
		return nil, err
	}

	material, err := s.materials.Create(ctx, models.MaterialPatch{
		Title:       &in.Title,
		Description: in.Description,
		Text:        in.Text,
		Author:      &user.Name,
		Category:    &in.Category,
		Theme:       &in.Theme,
	})
	if err != nil {
		return nil, err
	}
	return s.materials.FindByIDWithDetails(ctx, material.ID)
}

// FindAll returns every material as a detail view. With a known user the
// favorite flags come from one membership set per call, not one query per
// row.
func (s *MaterialsService) FindAll(ctx context.Context, userID *int) ([]models.MaterialWithFavorites, error) {
	materials, err := s.materials.FindAllWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, materials, userID)
}

func (s *MaterialsService) FindByCategory(ctx context.Context, categoryID int, userID *int) ([]models.MaterialWithFavorites, error) {
	materials, err := s.materials.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	details, err := s.loadDetails(ctx, materials)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, details, userID)
}

func (s *MaterialsService) FindByTheme(ctx context.Context, themeID int, userID *int) ([]models.MaterialWithFavorites, error) {
	materials, err := s.materials.FindByTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}
	details, err := s.loadDetails(ctx, materials)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, details, userID)
}

func (s *MaterialsService) FindOne(ctx context.Context, id int, userID *int) (*models.MaterialWithFavorites, error) {
	material, err := s.materials.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperr.NotFound("material with ID %d not found", id)
	}

	isFavorite := false
	if userID != nil {
		isFavorite, err = s.favorites.IsFavorite(ctx, id, *userID)
		if err != nil {
			return nil, err
		}
	}
	return &models.MaterialWithFavorites{MaterialWithDetails: *material, IsFavorite: isFavorite}, nil
}

// Update edits a material. Non-admins may only touch materials whose
// author string equals their current name.
func (s *MaterialsService) Update(ctx context.Context, id int, in UpdateMaterialInput, userID int, isAdmin bool) (*models.MaterialWithDetails, error) {
	if err := s.authorize(ctx, id, userID, isAdmin); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, in.Category, in.Theme); err != nil {
		return nil, err
	}

	if _, err := s.materials.Update(ctx, id, models.MaterialPatch{
		Title:       in.Title,
		Description: in.Description,
		Text:        in.Text,
		Category:    in.Category,
		Theme:       in.Theme,
	}); err != nil {
		return nil, err
	}
	return s.materials.FindByIDWithDetails(ctx, id)
}

// Remove deletes a material under the same ownership rule as Update.
func (s *MaterialsService) Remove(ctx context.Context, id int, userID int, isAdmin bool) error {
	if err := s.authorize(ctx, id, userID, isAdmin); err != nil {
		return err
	}
	_, err := s.materials.Delete(ctx, id)
	return err
}

// ToggleFavorite flips the (material, user) pair and returns the new
// state. Two calls in sequence return to the original state.
func (s *MaterialsService) ToggleFavorite(ctx context.Context, materialID, userID int) (bool, error) {
	material, err := s.materials.FindByID(ctx, materialID)
	if err != nil {
		return false, err
	}
	if material == nil {
		return false, apperr.NotFound("material with ID %d not found", materialID)
	}

	isFavorite, err := s.favorites.IsFavorite(ctx, materialID, userID)
	if err != nil {
		return false, err
	}
	if isFavorite {
		if _, err := s.favorites.Remove(ctx, materialID, userID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.favorites.Add(ctx, materialID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// FindFavorites returns the detail view of every material the user has
// favorited, each flagged as favorite.
func (s *MaterialsService) FindFavorites(ctx context.Context, userID int) ([]models.MaterialWithFavorites, error) {
	favorites, err := s.favorites.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.MaterialWithFavorites, 0, len(favorites))
	for _, fav := range favorites {
		material, err := s.materials.FindByIDWithDetails(ctx, fav.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			continue
		}
		out = append(out, models.MaterialWithFavorites{MaterialWithDetails: *material, IsFavorite: true})
	}
	return out, nil
}

func (s *MaterialsService) authorize(ctx context.Context, materialID, userID int, isAdmin bool) error {
	material, err := s.materials.FindByID(ctx, materialID)
	if err != nil {
		return err
	}
	if material == nil {
		return apperr.NotFound("material with ID %d not found", materialID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user with ID %d not found", userID)
	}

	// Ownership is name equality against the denormalized author column. A
	// renamed user no longer matches their old materials.
	if !isAdmin && material.Author != user.Name {
		return apperr.Forbidden("you can only modify your own materials")
	}
	return nil
}

func (s *MaterialsService) checkReferences(ctx context.Context, categoryID, themeID *int) error {
	if categoryID != nil {
		category, err := s.categories.FindByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperr.NotFound("category with ID %d not found", *categoryID)
		}
	}
	if themeID != nil {
		theme, err := s.themes.FindByID(ctx, *themeID)
		if err != nil {
			return err
		}
		if theme == nil {
			return apperr.NotFound("theme with ID %d not found", *themeID)
		}
	}
	return nil
}

func (s *MaterialsService) loadDetails(ctx context.Context, materials []models.Material) ([]models.MaterialWithDetails, error) {
	out := make([]models.MaterialWithDetails, 0, len(materials))
	for _, m := range materials {
		detail, err := s.materials.FindByIDWithDetails(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if detail != nil {
			out = append(out, *detail)
		}
	}
	return out, nil
}

func (s *MaterialsService) annotate(ctx context.Context, materials []models.MaterialWithDetails, userID *int) ([]models.MaterialWithFavorites, error) {
	favoriteIDs := map[int]bool{}
	if userID != nil {
		favorites, err := s.favorites.FindByUser(ctx, *userID)
		if err != nil {
			return nil, err
		}
		for _, fav := range favorites {
			favoriteIDs[fav.MaterialID] = true
		}
	}

	out := make([]models.MaterialWithFavorites, 0, len(materials))
	for _, m := range materials {
		out = append(out, models.MaterialWithFavorites{
			MaterialWithDetails: m,
			IsFavorite:          favoriteIDs[m.ID],
		})
	}
	return out, nil
}
