package models

import "time"

// Material is a teaching material. Author is the creator's display name
// copied at creation time, not a foreign key: if a user is later renamed
// they no longer match their old materials in ownership checks.
type Material struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Text        *string    `json:"text,omitempty"`
	Author      string     `json:"author"`
	Category    int        `json:"category"`
	Theme       int        `json:"theme"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// MaterialWithDetails joins a material with its category (including that
// category's theme) and its own theme in a single read.
type MaterialWithDetails struct {
	Material
	CategoryDetails CategoryWithTheme `json:"categoryDetails"`
	ThemeDetails    Theme             `json:"themeDetails"`
}

// MaterialWithFavorites annotates the detail view with the requesting
// user's favorite state.
type MaterialWithFavorites struct {
	MaterialWithDetails
	IsFavorite bool `json:"isFavorite"`
}

type MaterialPatch struct {
	Title       *string
	Description *string
	Text        *string
	Author      *string
	Category    *int
	Theme       *int
}
