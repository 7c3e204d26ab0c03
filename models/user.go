package models

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
	IsBanned     bool   `json:"isBanned"`
}

// PublicUser is the wire shape of a user, without the password hash.
type PublicUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	IsBanned bool   `json:"isBanned"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsBanned: u.IsBanned,
	}
}

// UserPatch carries the fields of a partial user write. Nil fields are
// omitted from the generated statement.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
	IsBanned     *bool
}
