package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/models"
)

// FavoriteRepository handles the (material, user) association table. The
// pair is the whole identity, so it does not go through the generic
// single-key repository.
type FavoriteRepository struct {
	db *database.DB
}

func NewFavoriteRepository(db *database.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the pair. A concurrent duplicate insert loses against the
// composite primary key and surfaces as a conflict.
func (r *FavoriteRepository) Add(ctx context.Context, materialID, userID int) (*models.Favorite, error) {
	sqlText, args, err := psql.Insert("favorit").
		SetMap(map[string]any{"material_id": materialID, "user_id": userID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, translate(err, "insert", "favorit")
	}

	row := Row{}
	if err := r.db.QueryRowxContext(ctx, sqlText, args...).MapScan(row); err != nil {
		return nil, translate(err, "insert", "favorit")
	}
	return &models.Favorite{
		MaterialID: row.Int("material_id"),
		UserID:     row.Int("user_id"),
	}, nil
}

// Remove deletes the pair and reports whether it existed.
func (r *FavoriteRepository) Remove(ctx context.Context, materialID, userID int) (bool, error) {
	sqlText, args, err := psql.Delete("favorit").
		Where(squirrel.Eq{"material_id": materialID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, translate(err, "delete", "favorit")
	}

	res, err := r.db.ExecContext(ctx, sqlText, args...)
	if err != nil {
		return false, translate(err, "delete", "favorit")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "delete", "favorit")
	}
	return affected > 0, nil
}

// IsFavorite reports whether the pair exists.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, materialID, userID int) (bool, error) {
	sqlText, args, err := psql.Select("1").
		From("favorit").
		Where(squirrel.Eq{"material_id": materialID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, translate(err, "query", "favorit")
	}

	var one int
	err = r.db.QueryRowxContext(ctx, sqlText, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, "query", "favorit")
	}
	return true, nil
}

// FindByUser returns every favorite pair for a user.
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	sqlText, args, err := psql.Select("*").
		From("favorit").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, translate(err, "query", "favorit")
	}

	rows, err := r.db.QueryxContext(ctx, sqlText, args...)
	if err != nil {
		return nil, translate(err, "query", "favorit")
	}
	defer rows.Close()

	var out []models.Favorite
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, translate(err, "query", "favorit")
		}
		out = append(out, models.Favorite{
			MaterialID: row.Int("material_id"),
			UserID:     row.Int("user_id"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "query", "favorit")
	}
	return out, nil
}
