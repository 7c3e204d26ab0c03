package repositories

import (
	"context"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/models"
)

type userMapper struct{}

// The table name is quoted because "user" is a reserved word in PostgreSQL.
func (userMapper) Table() string      { return `"user"` }
func (userMapper) PrimaryKey() string { return "id" }

func (userMapper) Scan(row Row) models.User {
	return models.User{
		ID:           row.Int("id"),
		Name:         row.String("name"),
		Email:        row.String("email"),
		PasswordHash: row.String("password_hash"),
		IsAdmin:      row.Bool("is_admin"),
		IsBanned:     row.Bool("is_banned"),
	}
}

// UserRepository handles user rows.
type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User](db, userMapper{})}
}

func (r *UserRepository) Create(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	return r.Repository.Create(ctx, userRow(patch))
}

func (r *UserRepository) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	return r.Repository.Update(ctx, id, userRow(patch))
}

// FindByEmail matches the email exactly as stored; no case normalization.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOneBy(ctx, Where{"email": email})
}

func userRow(patch models.UserPatch) Row {
	row := Row{}
	if patch.Name != nil {
		row["name"] = *patch.Name
	}
	if patch.Email != nil {
		row["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		row["password_hash"] = *patch.PasswordHash
	}
	if patch.IsAdmin != nil {
		row["is_admin"] = *patch.IsAdmin
	}
	if patch.IsBanned != nil {
		row["is_banned"] = *patch.IsBanned
	}
	return row
}
