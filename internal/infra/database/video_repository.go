package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

type VideoRepository struct {
	DB *sql.DB
}

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO videos (id, youtube_id, title, active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.YoutubeID, nullString(v.Title), v.Active, v.SortOrder, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *VideoRepository) Update(ctx context.Context, v *entity.Video) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE videos
		SET youtube_id = $2, title = $3, active = $4, sort_order = $5, updated_at = $6
		WHERE id = $1`,
		v.ID, v.YoutubeID, nullString(v.Title), v.Active, v.SortOrder, v.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, youtube_id, title, active, sort_order, created_at, updated_at
		FROM videos WHERE id = $1`, id)
	return scanVideo(row)
}

func (r *VideoRepository) List(ctx context.Context, includeInactive bool) ([]entity.Video, error) {
	query := `
		SELECT id, youtube_id, title, active, sort_order, created_at, updated_at
		FROM videos`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanVideo(row rowScanner) (*entity.Video, error) {
	var v entity.Video
	var title sql.NullString

	err := row.Scan(&v.ID, &v.YoutubeID, &title, &v.Active, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	v.Title = title.String
	return &v, nil
}
