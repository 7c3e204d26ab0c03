package models

// Favorite is the (material, user) association. It has no identity of its
// own; existence of the pair is the whole state.
type Favorite struct {
	MaterialID int `json:"materialId"`
	UserID     int `json:"userId"`
}
