package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

// AppointmentScheduler owns the agenda: it validates proposed intervals,
// refuses overlaps with other scheduled lessons and drives status
// transitions. The in-process overlap check is only an early exit; the
// exclusion constraint on the appointments table is what actually
// guarantees the invariant when two writers race.
type AppointmentScheduler struct {
	Repo AppointmentRepositoryInterface
}

func NewAppointmentScheduler(repo AppointmentRepositoryInterface) *AppointmentScheduler {
	return &AppointmentScheduler{Repo: repo}
}

func (s *AppointmentScheduler) Create(ctx context.Context, input CreateAppointmentInput) (*entity.Appointment, error) {
	startAt, endAt, err := parseInterval(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, startAt, endAt, ""); err != nil {
		return nil, err
	}

	appointment := entity.NewAppointment(startAt, endAt)
	appointment.LeadID = cleanString(input.LeadID)
	appointment.ClientID = cleanString(input.ClientID)
	appointment.Title = cleanString(input.Title)
	appointment.City = cleanString(input.City)
	appointment.Location = cleanString(input.Location)
	appointment.Notes = cleanString(input.Notes)

	if err := s.Repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, entity.ErrScheduleConflict) {
			return nil, scheduleConflict()
		}
		return nil, databaseError("failed to create appointment", err)
	}
	return appointment, nil
}

func (s *AppointmentScheduler) Update(ctx context.Context, id string, patch UpdateAppointmentInput) (*entity.Appointment, error) {
	appointment, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("appointment")
		}
		return nil, databaseError("failed to load appointment", err)
	}

	changed := 0
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = cleanString(*src)
			changed++
		}
	}
	apply(&appointment.LeadID, patch.LeadID)
	apply(&appointment.ClientID, patch.ClientID)
	apply(&appointment.Title, patch.Title)
	apply(&appointment.City, patch.City)
	apply(&appointment.Location, patch.Location)
	apply(&appointment.Notes, patch.Notes)
	apply(&appointment.Status, patch.Status)

	// The interval is only re-validated when the patch carries both ends.
	// A lone start or end still updates the field, matching the admin form
	// which always submits the pair when the time changes.
	if patch.Start != nil && patch.End != nil {
		startAt, endAt, err := parseInterval(*patch.Start, *patch.End)
		if err != nil {
			return nil, err
		}
		if err := s.checkOverlap(ctx, startAt, endAt, appointment.ID); err != nil {
			return nil, err
		}
		appointment.StartAt = startAt
		appointment.EndAt = endAt
		changed++
	} else if patch.Start != nil {
		startAt, err := parseTimestamp(*patch.Start)
		if err != nil {
			return nil, invalidInterval(err.Error())
		}
		appointment.StartAt = startAt
		changed++
	} else if patch.End != nil {
		endAt, err := parseTimestamp(*patch.End)
		if err != nil {
			return nil, invalidInterval(err.Error())
		}
		appointment.EndAt = endAt
		changed++
	}

	if changed == 0 {
		return nil, nothingToUpdate()
	}

	appointment.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, appointment); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("appointment")
		}
		if errors.Is(err, entity.ErrScheduleConflict) {
			return nil, scheduleConflict()
		}
		return nil, databaseError("failed to update appointment", err)
	}
	return appointment, nil
}

func (s *AppointmentScheduler) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, entity.AppointmentCancelled)
}

func (s *AppointmentScheduler) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, entity.AppointmentCompleted)
}

func (s *AppointmentScheduler) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound("appointment")
		}
		return databaseError("failed to delete appointment", err)
	}
	return nil
}

// List fetches the whole agenda and filters in memory. The dataset is a
// single instructor's calendar, so the bulk fetch stays cheap.
func (s *AppointmentScheduler) List(ctx context.Context, filter ListAppointmentsFilter) ([]entity.Appointment, error) {
	all, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, databaseError("failed to list appointments", err)
	}

	var from, to time.Time
	if filter.From != "" {
		if from, err = parseTimestamp(filter.From); err != nil {
			return nil, invalidInterval(err.Error())
		}
	}
	if filter.To != "" {
		if to, err = parseTimestamp(filter.To); err != nil {
			return nil, invalidInterval(err.Error())
		}
	}

	out := make([]entity.Appointment, 0, len(all))
	for _, a := range all {
		if !from.IsZero() && a.StartAt.Before(from) {
			continue
		}
		if !to.IsZero() && a.StartAt.After(to) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && a.Status != filter.Status {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(a.City), strings.ToLower(filter.City)) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *AppointmentScheduler) transition(ctx context.Context, id, status string) error {
	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound("appointment")
		}
		return databaseError("failed to update appointment status", err)
	}
	return nil
}

func (s *AppointmentScheduler) checkOverlap(ctx context.Context, startAt, endAt time.Time, excludeID string) error {
	scheduled, err := s.Repo.ListByStatus(ctx, entity.AppointmentScheduled)
	if err != nil {
		return databaseError("failed to check schedule conflicts", err)
	}
	for _, a := range scheduled {
		if a.ID == excludeID {
			continue
		}
		if a.Overlaps(startAt, endAt) {
			return scheduleConflict()
		}
	}
	return nil
}

func parseInterval(start, end string) (time.Time, time.Time, error) {
	startAt, err := parseTimestamp(start)
	if err != nil {
		return time.Time{}, time.Time{}, invalidInterval("start: " + err.Error())
	}
	endAt, err := parseTimestamp(end)
	if err != nil {
		return time.Time{}, time.Time{}, invalidInterval("end: " + err.Error())
	}
	if !startAt.Before(endAt) {
		return time.Time{}, time.Time{}, invalidInterval("start must be before end")
	}
	return startAt, endAt, nil
}

func invalidInterval(msg string) *DomainError {
	return &DomainError{Code: CodeInvalidInterval, Message: msg}
}

func scheduleConflict() *DomainError {
	return &DomainError{
		Code:    CodeSchedulingConflict,
		Message: "there is already an appointment in this time range",
	}
}
