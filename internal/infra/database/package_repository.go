package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

type PackageRepository struct {
	DB *sql.DB
}

func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{DB: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *entity.Package) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO packages (id, title, price, lesson_count, savings, card_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Price, p.LessonCount, nullString(p.Savings), p.CardColor, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PackageRepository) Update(ctx context.Context, p *entity.Package) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE packages
		SET title = $2, price = $3, lesson_count = $4, savings = $5, card_color = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.Title, p.Price, p.LessonCount, nullString(p.Savings), p.CardColor, p.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, price, lesson_count, savings, card_color, created_at, updated_at
		FROM packages WHERE id = $1`, id)
	return scanPackage(row)
}

// List orders by price ascending, the order the pricing section shows.
func (r *PackageRepository) List(ctx context.Context) ([]entity.Package, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, price, lesson_count, savings, card_color, created_at, updated_at
		FROM packages ORDER BY price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanPackage(row rowScanner) (*entity.Package, error) {
	var p entity.Package
	var savings sql.NullString

	err := row.Scan(&p.ID, &p.Title, &p.Price, &p.LessonCount, &savings, &p.CardColor, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Savings = savings.String
	return &p, nil
}
