package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

const appointmentColumns = `
	id, lead_id, client_id, title, city, location, notes,
	start_at, end_at, status, created_at, updated_at`

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, lead_id, client_id, title, city, location, notes,
			start_at, end_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID,
		nullString(a.LeadID),
		nullString(a.ClientID),
		nullString(a.Title),
		nullString(a.City),
		nullString(a.Location),
		nullString(a.Notes),
		a.StartAt,
		a.EndAt,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET lead_id = $2, client_id = $3, title = $4, city = $5, location = $6,
			notes = $7, start_at = $8, end_at = $9, status = $10, updated_at = $11
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		a.ID,
		nullString(a.LeadID),
		nullString(a.ClientID),
		nullString(a.Title),
		nullString(a.City),
		nullString(a.Location),
		nullString(a.Notes),
		a.StartAt,
		a.EndAt,
		a.Status,
		a.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT`+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.list(ctx, `SELECT`+appointmentColumns+` FROM appointments ORDER BY start_at ASC`)
}

func (r *AppointmentRepository) ListByStatus(ctx context.Context, status string) ([]entity.Appointment, error) {
	return r.list(ctx, `SELECT`+appointmentColumns+` FROM appointments WHERE status = $1 ORDER BY start_at ASC`, status)
}

// SetStatus flips a scheduled appointment to a terminal status. Rows that
// already left "scheduled" are not touched, which makes repeated cancels
// and completes a silent no-op.
func (r *AppointmentRepository) SetStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE appointments SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, status, entity.AppointmentScheduled)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	// Nothing changed: either the row is gone or it is already terminal.
	var exists bool
	if err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return entity.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]entity.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*entity.Appointment, error) {
	var a entity.Appointment
	var leadID, clientID, title, city, location, notes sql.NullString

	err := row.Scan(
		&a.ID, &leadID, &clientID, &title, &city, &location, &notes,
		&a.StartAt, &a.EndAt, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.LeadID = leadID.String
	a.ClientID = clientID.String
	a.Title = title.String
	a.City = city.String
	a.Location = location.String
	a.Notes = notes.String
	return &a, nil
}
