package services

import (
	"context"
	"sort"
	"time"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
)

// In-memory store fakes. They keep the same contract as the repositories:
// nil for absent rows, conflicts for duplicate favorites.

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func userBanPatch(banned bool) models.UserPatch {
	return models.UserPatch{IsBanned: &banned}
}

type fakeUserStore struct {
	seq   int
	users map[int]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]models.User{}}
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	f.seq++
	u := models.User{ID: f.seq}
	applyUserPatch(&u, patch)
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	applyUserPatch(&u, patch)
	f.users[id] = u
	return &u, nil
}

func applyUserPatch(u *models.User, patch models.UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	if patch.IsBanned != nil {
		u.IsBanned = *patch.IsBanned
	}
}

type fakeThemeStore struct {
	seq    int
	themes map[int]models.Theme
}

func newFakeThemeStore() *fakeThemeStore {
	return &fakeThemeStore{themes: map[int]models.Theme{}}
}

func (f *fakeThemeStore) FindAll(ctx context.Context) ([]models.Theme, error) {
	out := make([]models.Theme, 0, len(f.themes))
	for _, t := range f.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeThemeStore) FindByID(ctx context.Context, id int) (*models.Theme, error) {
	if t, ok := f.themes[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeThemeStore) FindByName(ctx context.Context, name string) (*models.Theme, error) {
	for _, t := range f.themes {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeThemeStore) Create(ctx context.Context, patch models.ThemePatch) (*models.Theme, error) {
	f.seq++
	t := models.Theme{ID: f.seq}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	t.Description = patch.Description
	f.themes[t.ID] = t
	return &t, nil
}

func (f *fakeThemeStore) Update(ctx context.Context, id int, patch models.ThemePatch) (*models.Theme, error) {
	t, ok := f.themes[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	f.themes[id] = t
	return &t, nil
}

func (f *fakeThemeStore) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.themes[id]; !ok {
		return false, nil
	}
	delete(f.themes, id)
	return true, nil
}

type fakeCategoryStore struct {
	seq        int
	categories map[int]models.Category
	themes     *fakeThemeStore
}

func newFakeCategoryStore(themes *fakeThemeStore) *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[int]models.Category{}, themes: themes}
}

func (f *fakeCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id int) (*models.Category, error) {
	if c, ok := f.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindByTheme(ctx context.Context, themeID int) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.Theme == themeID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryStore) FindByIDWithTheme(ctx context.Context, id int) (*models.CategoryWithTheme, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &models.CategoryWithTheme{Category: c, ThemeDetails: f.themes.themes[c.Theme]}, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, patch models.CategoryPatch) (*models.Category, error) {
	f.seq++
	c := models.Category{ID: f.seq}
	applyCategoryPatch(&c, patch)
	f.categories[c.ID] = c
	return &c, nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	applyCategoryPatch(&c, patch)
	f.categories[id] = c
	return &c, nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

func applyCategoryPatch(c *models.Category, patch models.CategoryPatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = patch.Description
	}
	if patch.Theme != nil {
		c.Theme = *patch.Theme
	}
}

type fakeMaterialStore struct {
	seq        int
	materials  map[int]models.Material
	order      []int
	categories *fakeCategoryStore
	themes     *fakeThemeStore
}

func newFakeMaterialStore(categories *fakeCategoryStore, themes *fakeThemeStore) *fakeMaterialStore {
	return &fakeMaterialStore{
		materials:  map[int]models.Material{},
		categories: categories,
		themes:     themes,
	}
}

func (f *fakeMaterialStore) FindByID(ctx context.Context, id int) (*models.Material, error) {
	if m, ok := f.materials[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (f *fakeMaterialStore) FindByIDWithDetails(ctx context.Context, id int) (*models.MaterialWithDetails, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, nil
	}
	detail := f.details(m)
	return &detail, nil
}

// FindAllWithDetails returns newest first, like the ordered read it fakes.
func (f *fakeMaterialStore) FindAllWithDetails(ctx context.Context) ([]models.MaterialWithDetails, error) {
	out := make([]models.MaterialWithDetails, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if m, ok := f.materials[f.order[i]]; ok {
			out = append(out, f.details(m))
		}
	}
	return out, nil
}

func (f *fakeMaterialStore) FindByCategory(ctx context.Context, categoryID int) ([]models.Material, error) {
	var out []models.Material
	for _, id := range f.order {
		if m, ok := f.materials[id]; ok && m.Category == categoryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaterialStore) FindByTheme(ctx context.Context, themeID int) ([]models.Material, error) {
	var out []models.Material
	for _, id := range f.order {
		if m, ok := f.materials[id]; ok && m.Theme == themeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaterialStore) Create(ctx context.Context, patch models.MaterialPatch) (*models.Material, error) {
	f.seq++
	now := time.Now().UTC()
	m := models.Material{ID: f.seq, CreatedAt: &now, UpdatedAt: &now}
	applyMaterialPatch(&m, patch)
	f.materials[m.ID] = m
	f.order = append(f.order, m.ID)
	return &m, nil
}

func (f *fakeMaterialStore) Update(ctx context.Context, id int, patch models.MaterialPatch) (*models.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, nil
	}
	applyMaterialPatch(&m, patch)
	now := time.Now().UTC()
	m.UpdatedAt = &now
	f.materials[id] = m
	return &m, nil
}

func (f *fakeMaterialStore) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.materials[id]; !ok {
		return false, nil
	}
	delete(f.materials, id)
	return true, nil
}

func (f *fakeMaterialStore) details(m models.Material) models.MaterialWithDetails {
	theme := f.themes.themes[m.Theme]
	return models.MaterialWithDetails{
		Material: m,
		CategoryDetails: models.CategoryWithTheme{
			Category:     f.categories.categories[m.Category],
			ThemeDetails: theme,
		},
		ThemeDetails: theme,
	}
}

func applyMaterialPatch(m *models.Material, patch models.MaterialPatch) {
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = patch.Description
	}
	if patch.Text != nil {
		m.Text = patch.Text
	}
	if patch.Author != nil {
		m.Author = *patch.Author
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Theme != nil {
		m.Theme = *patch.Theme
	}
}

type fakeFavoriteStore struct {
	pairs []models.Favorite
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{}
}

func (f *fakeFavoriteStore) Add(ctx context.Context, materialID, userID int) (*models.Favorite, error) {
	for _, p := range f.pairs {
		if p.MaterialID == materialID && p.UserID == userID {
			return nil, apperr.Conflict("favorite already exists")
		}
	}
	pair := models.Favorite{MaterialID: materialID, UserID: userID}
	f.pairs = append(f.pairs, pair)
	return &pair, nil
}

func (f *fakeFavoriteStore) Remove(ctx context.Context, materialID, userID int) (bool, error) {
	for i, p := range f.pairs {
		if p.MaterialID == materialID && p.UserID == userID {
			f.pairs = append(f.pairs[:i], f.pairs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteStore) IsFavorite(ctx context.Context, materialID, userID int) (bool, error) {
	for _, p := range f.pairs {
		if p.MaterialID == materialID && p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteStore) FindByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, p := range f.pairs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
