package models

// Theme is a top-level taxonomy node.
type Theme struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type ThemePatch struct {
	Name        *string
	Description *string
}
