package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID       string `json:"id"`
	LeadID   string `json:"lead_id,omitempty"`
	ClientID string `json:"client_id,omitempty"`

	Title    string `json:"title,omitempty"`
	City     string `json:"city,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`

	StartAt time.Time `json:"start"`
	EndAt   time.Time `json:"end"`
	Status  string    `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppointment(startAt, endAt time.Time) *Appointment {
	return &Appointment{
		ID:        uuid.New().String(),
		StartAt:   startAt,
		EndAt:     endAt,
		Status:    AppointmentScheduled,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Overlaps reports whether [start, end) intersects this appointment's
// half-open interval. Abutting intervals do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartAt.Before(end) && start.Before(a.EndAt)
}

func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentCompleted || a.Status == AppointmentCancelled
}
