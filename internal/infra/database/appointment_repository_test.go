package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

func TestAppointmentCreateMapsExclusionViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	// The gist exclusion constraint on the scheduled rows fires as SQLSTATE
	// 23P01 when two writers race for the same slot.
	mock.ExpectExec("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "appointments_no_overlap"})

	a := entity.NewAppointment(
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
	)
	err = repo.Create(context.Background(), a)
	assert.ErrorIs(t, err, entity.ErrScheduleConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentSetStatusTerminalIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	// The conditional UPDATE touches nothing when the row already left
	// "scheduled"; the follow-up existence probe decides no-op vs missing.
	mock.ExpectExec("UPDATE appointments").
		WithArgs("appt-1", entity.AppointmentCancelled, entity.AppointmentScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = repo.SetStatus(context.Background(), "appt-1", entity.AppointmentCancelled)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentSetStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WithArgs("missing", entity.AppointmentCancelled, entity.AppointmentScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err = repo.SetStatus(context.Background(), "missing", entity.AppointmentCancelled)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentSetStatusUpdatesScheduledRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WithArgs("appt-1", entity.AppointmentCompleted, entity.AppointmentScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetStatus(context.Background(), "appt-1", entity.AppointmentCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	mock.ExpectQuery("SELECT(.|\n)+FROM appointments").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "lead_id", "client_id", "title", "city", "location", "notes",
			"start_at", "end_at", "status", "created_at", "updated_at",
		}))

	a, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, a)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAppointmentListByStatusScansNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAppointmentRepository(db)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "lead_id", "client_id", "title", "city", "location", "notes",
		"start_at", "end_at", "status", "created_at", "updated_at",
	}).AddRow("appt-1", nil, "client-1", nil, "Osasco", nil, nil,
		start, end, entity.AppointmentScheduled, start, start)

	mock.ExpectQuery("SELECT(.|\n)+FROM appointments WHERE status").
		WithArgs(entity.AppointmentScheduled).
		WillReturnRows(rows)

	out, err := repo.ListByStatus(context.Background(), entity.AppointmentScheduled)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "appt-1", out[0].ID)
	assert.Empty(t, out[0].LeadID)
	assert.Equal(t, "client-1", out[0].ClientID)
	assert.Equal(t, "Osasco", out[0].City)
	assert.Equal(t, start, out[0].StartAt)
}
