package models

// Category groups materials within a theme.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Theme       int     `json:"theme"`
}

// CategoryWithTheme is the joined detail view of a category.
type CategoryWithTheme struct {
	Category
	ThemeDetails Theme `json:"themeDetails"`
}

type CategoryPatch struct {
	Name        *string
	Description *string
	Theme       *int
}
