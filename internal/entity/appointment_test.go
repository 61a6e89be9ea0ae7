package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

func TestAppointmentOverlapsHalfOpen(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	}
	a := entity.NewAppointment(at(10, 0), at(11, 0))

	assert.True(t, a.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, a.Overlaps(at(9, 30), at(10, 30)))
	assert.True(t, a.Overlaps(at(9, 0), at(12, 0)))
	assert.True(t, a.Overlaps(at(10, 15), at(10, 45)))

	// Intervals are half-open, so sharing an endpoint is not a collision.
	assert.False(t, a.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, a.Overlaps(at(9, 0), at(10, 0)))
	assert.False(t, a.Overlaps(at(12, 0), at(13, 0)))
}

func TestAppointmentIsTerminal(t *testing.T) {
	a := entity.NewAppointment(time.Now(), time.Now().Add(time.Hour))
	assert.False(t, a.IsTerminal())

	a.Status = entity.AppointmentCancelled
	assert.True(t, a.IsTerminal())

	a.Status = entity.AppointmentCompleted
	assert.True(t, a.IsTerminal())
}
