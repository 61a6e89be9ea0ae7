package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, name, email, phone, city, address, notes, status, lead_id, created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, city, address, notes, status, lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.City),
		nullString(c.Address),
		nullString(c.Notes),
		c.Status,
		nullString(c.LeadID),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return scanClient(row)
}

func (r *ClientRepository) List(ctx context.Context, q usecase.ClientQuery) ([]entity.Client, int, error) {
	where := []string{}
	args := []interface{}{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		where = append(where, fmt.Sprintf(
			"(name ILIKE %[1]s OR email ILIKE %[1]s OR phone ILIKE %[1]s OR city ILIKE %[1]s OR address ILIKE %[1]s OR notes ILIKE %[1]s)", p))
	}
	if q.Status != "" {
		where = append(where, "status = "+arg(q.Status))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + clientColumns + ` FROM clients` + clause +
		` ORDER BY created_at DESC LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg(q.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []entity.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, city = $5, address = $6,
			notes = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullString(c.Email),
		nullString(c.Phone),
		nullString(c.City),
		nullString(c.Address),
		nullString(c.Notes),
		c.Status,
		c.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	var email, phone, city, address, notes, leadID sql.NullString

	err := row.Scan(&c.ID, &c.Name, &email, &phone, &city, &address, &notes,
		&c.Status, &leadID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Email = email.String
	c.Phone = phone.String
	c.City = city.String
	c.Address = address.String
	c.Notes = notes.String
	c.LeadID = leadID.String
	return &c, nil
}
