package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/http/handlers"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

// MockAppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByStatus(ctx context.Context, status string) ([]entity.Appointment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHandleCreateAppointmentCreated(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	mockRepo.On("ListByStatus", mock.Anything, entity.AppointmentScheduled).
		Return([]entity.Appointment{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := handlers.NewAppointmentHandler(usecase.NewAppointmentScheduler(mockRepo))

	body := `{"title":"Aula 1","city":"Osasco","start":"2026-03-10T10:00:00Z","end":"2026-03-10T11:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Appointment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, entity.AppointmentScheduled, got.Status)
	assert.Equal(t, "Aula 1", got.Title)
}

func TestHandleCreateAppointmentConflictIs409(t *testing.T) {
	day := func(h int) time.Time {
		return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
	}
	existing := []entity.Appointment{{
		ID: "appt-1", StartAt: day(10), EndAt: day(11), Status: entity.AppointmentScheduled,
	}}

	mockRepo := new(MockAppointmentRepository)
	mockRepo.On("ListByStatus", mock.Anything, entity.AppointmentScheduled).Return(existing, nil)

	handler := handlers.NewAppointmentHandler(usecase.NewAppointmentScheduler(mockRepo))

	body := `{"start":"2026-03-10T10:30:00Z","end":"2026-03-10T11:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "SCHEDULING_CONFLICT")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestHandleCreateAppointmentInvalidIntervalIs400(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	handler := handlers.NewAppointmentHandler(usecase.NewAppointmentScheduler(mockRepo))

	body := `{"start":"2026-03-10T11:00:00Z","end":"2026-03-10T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INTERVAL")
}

func TestHandleListAppointmentsPassesFilters(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	mockRepo.On("ListAll", mock.Anything).Return([]entity.Appointment{
		{ID: "a", StartAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			Status: entity.AppointmentScheduled, City: "Osasco"},
		{ID: "b", StartAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			EndAt: time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
			Status: entity.AppointmentCancelled, City: "Osasco"},
	}, nil)

	handler := handlers.NewAppointmentHandler(usecase.NewAppointmentScheduler(mockRepo))

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments?status=scheduled&city=osasco", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []entity.Appointment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
