// Package repositories is the data-access layer: a generic record mapper
// plus one specialized repository per entity. All SQL is generated with
// bound parameters; nothing interpolates values into query text.
package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/database"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Where is translated into an AND conjunction of equality predicates,
// ordered by column name.
type Where map[string]any

// Mapper supplies the table metadata and row decoding for one entity type.
// Repositories compose a Repository with their Mapper instead of
// inheriting from a base class.
type Mapper[T any] interface {
	Table() string
	PrimaryKey() string
	Scan(row Row) T
}

// Repository is the generic data-access function set shared by every
// entity. It is stateless per call; the pool inside database.DB is the
// only shared resource.
type Repository[T any] struct {
	db     *database.DB
	mapper Mapper[T]
}

func NewRepository[T any](db *database.DB, mapper Mapper[T]) *Repository[T] {
	return &Repository[T]{db: db, mapper: mapper}
}

func (r *Repository[T]) DB() *database.DB {
	return r.db
}

// FindAll returns every row of the table.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := r.selectRows(ctx, psql.Select("*").From(r.mapper.Table()))
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows), nil
}

// FindByID returns the row with the given primary key, or nil.
func (r *Repository[T]) FindByID(ctx context.Context, id int) (*T, error) {
	builder := psql.Select("*").
		From(r.mapper.Table()).
		Where(squirrel.Eq{r.mapper.PrimaryKey(): id})
	return r.selectOne(ctx, builder)
}

// FindBy returns the rows matching every predicate in where. An empty
// predicate map is rejected rather than silently matching the whole table.
func (r *Repository[T]) FindBy(ctx context.Context, where Where) ([]T, error) {
	if len(where) == 0 {
		return nil, apperr.Query(nil, "empty predicate for %s", r.mapper.Table())
	}
	rows, err := r.selectRows(ctx, psql.Select("*").From(r.mapper.Table()).Where(squirrel.Eq(where)))
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows), nil
}

// FindOneBy returns the first row matching where, or nil.
func (r *Repository[T]) FindOneBy(ctx context.Context, where Where) (*T, error) {
	if len(where) == 0 {
		return nil, apperr.Query(nil, "empty predicate for %s", r.mapper.Table())
	}
	builder := psql.Select("*").
		From(r.mapper.Table()).
		Where(squirrel.Eq(where)).
		Limit(1)
	return r.selectOne(ctx, builder)
}

// Create inserts only the columns present in row and returns the persisted
// entity including generated columns.
func (r *Repository[T]) Create(ctx context.Context, row Row) (*T, error) {
	if len(row) == 0 {
		return nil, apperr.Query(nil, "empty row for insert into %s", r.mapper.Table())
	}
	sqlText, args, err := psql.Insert(r.mapper.Table()).
		SetMap(map[string]any(row)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, apperr.Query(err, "build insert for %s", r.mapper.Table())
	}

	rows, err := r.queryRows(ctx, sqlText, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.Query(nil, "insert into %s returned no row", r.mapper.Table())
	}
	entity := r.mapper.Scan(rows[0])
	return &entity, nil
}

// Update writes only the columns present in row and returns the updated
// entity, or nil if no row matched the id.
func (r *Repository[T]) Update(ctx context.Context, id int, row Row) (*T, error) {
	if len(row) == 0 {
		return nil, apperr.Query(nil, "empty patch for update of %s", r.mapper.Table())
	}
	sqlText, args, err := psql.Update(r.mapper.Table()).
		SetMap(map[string]any(row)).
		Where(squirrel.Eq{r.mapper.PrimaryKey(): id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, apperr.Query(err, "build update for %s", r.mapper.Table())
	}

	rows, err := r.queryRows(ctx, sqlText, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	entity := r.mapper.Scan(rows[0])
	return &entity, nil
}

// Delete removes the row with the given id and reports whether one existed.
func (r *Repository[T]) Delete(ctx context.Context, id int) (bool, error) {
	sqlText, args, err := psql.Delete(r.mapper.Table()).
		Where(squirrel.Eq{r.mapper.PrimaryKey(): id}).
		ToSql()
	if err != nil {
		return false, apperr.Query(err, "build delete for %s", r.mapper.Table())
	}

	res, err := r.db.ExecContext(ctx, sqlText, args...)
	if err != nil {
		return false, translate(err, "delete", r.mapper.Table())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Query(err, "delete from %s", r.mapper.Table())
	}
	return affected > 0, nil
}

// Count returns the number of rows matching where; a nil or empty
// predicate counts the whole table.
func (r *Repository[T]) Count(ctx context.Context, where Where) (int, error) {
	builder := psql.Select("COUNT(*)").From(r.mapper.Table())
	if len(where) > 0 {
		builder = builder.Where(squirrel.Eq(where))
	}
	sqlText, args, err := builder.ToSql()
	if err != nil {
		return 0, apperr.Query(err, "build count for %s", r.mapper.Table())
	}

	var n int
	if err := r.db.QueryRowxContext(ctx, sqlText, args...).Scan(&n); err != nil {
		return 0, translate(err, "count", r.mapper.Table())
	}
	return n, nil
}

// Exists reports whether a row with the given id exists.
func (r *Repository[T]) Exists(ctx context.Context, id int) (bool, error) {
	sqlText, args, err := psql.Select("1").
		From(r.mapper.Table()).
		Where(squirrel.Eq{r.mapper.PrimaryKey(): id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, apperr.Query(err, "build exists for %s", r.mapper.Table())
	}

	var one int
	err = r.db.QueryRowxContext(ctx, sqlText, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, "exists", r.mapper.Table())
	}
	return true, nil
}

func (r *Repository[T]) selectOne(ctx context.Context, builder squirrel.SelectBuilder) (*T, error) {
	rows, err := r.selectRows(ctx, builder)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	entity := r.mapper.Scan(rows[0])
	return &entity, nil
}

func (r *Repository[T]) selectRows(ctx context.Context, builder squirrel.SelectBuilder) ([]Row, error) {
	sqlText, args, err := builder.ToSql()
	if err != nil {
		return nil, apperr.Query(err, "build select for %s", r.mapper.Table())
	}
	return r.queryRows(ctx, sqlText, args)
}

func (r *Repository[T]) queryRows(ctx context.Context, sqlText string, args []any) ([]Row, error) {
	rows, err := r.db.QueryxContext(ctx, sqlText, args...)
	if err != nil {
		return nil, translate(err, "query", r.mapper.Table())
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, apperr.Query(err, "scan row from %s", r.mapper.Table())
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "query", r.mapper.Table())
	}
	return out, nil
}

func (r *Repository[T]) scanAll(rows []Row) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.Scan(row))
	}
	return out
}

// translate classifies storage failures. Constraint violations become
// conflicts; everything else stays an opaque query error carrying the
// driver error.
func translate(err error, op, table string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return &apperr.Error{
				Kind:    apperr.KindConflict,
				Message: "duplicate value violates a unique constraint on " + table,
				Err:     err,
			}
		case "23503":
			msg := table + " row references a missing record"
			if op == "delete" {
				msg = table + " row is referenced by other records"
			}
			return &apperr.Error{Kind: apperr.KindConflict, Message: msg, Err: err}
		}
	}
	return apperr.Query(err, "%s %s", op, table)
}
