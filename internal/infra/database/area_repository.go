package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

type AreaRepository struct {
	DB *sql.DB
}

func NewAreaRepository(db *sql.DB) *AreaRepository {
	return &AreaRepository{DB: db}
}

func (r *AreaRepository) Create(ctx context.Context, a *entity.Area) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO areas (id, city, image_url, active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.City, nullString(a.ImageURL), a.Active, a.SortOrder, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *AreaRepository) Update(ctx context.Context, a *entity.Area) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE areas
		SET city = $2, image_url = $3, active = $4, sort_order = $5, updated_at = $6
		WHERE id = $1`,
		a.ID, a.City, nullString(a.ImageURL), a.Active, a.SortOrder, a.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *AreaRepository) FindByID(ctx context.Context, id string) (*entity.Area, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, city, image_url, active, sort_order, created_at, updated_at
		FROM areas WHERE id = $1`, id)
	return scanArea(row)
}

func (r *AreaRepository) List(ctx context.Context, includeInactive bool) ([]entity.Area, error) {
	query := `
		SELECT id, city, image_url, active, sort_order, created_at, updated_at
		FROM areas`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, city ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Area{}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanArea(row rowScanner) (*entity.Area, error) {
	var a entity.Area
	var imageURL sql.NullString

	err := row.Scan(&a.ID, &a.City, &imageURL, &a.Active, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.ImageURL = imageURL.String
	return &a, nil
}
