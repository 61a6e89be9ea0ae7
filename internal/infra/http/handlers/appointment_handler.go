package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libertyaulas/liberty-backoffice/internal/infra/http/middleware"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

type AppointmentHandler struct {
	Scheduler *usecase.AppointmentScheduler
}

func NewAppointmentHandler(scheduler *usecase.AppointmentScheduler) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: scheduler}
}

func (h *AppointmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	appointment, err := h.Scheduler.Create(r.Context(), input)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == usecase.CodeSchedulingConflict {
			middleware.RecordSchedulingConflict()
		}
		writeError(w, err)
		return
	}

	middleware.RecordAppointmentScheduled()
	writeJSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch usecase.UpdateAppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	appointment, err := h.Scheduler.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == usecase.CodeSchedulingConflict {
			middleware.RecordSchedulingConflict()
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	appointments, err := h.Scheduler.List(r.Context(), usecase.ListAppointmentsFilter{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Status: q.Get("status"),
		City:   q.Get("city"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.Scheduler.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AppointmentHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if err := h.Scheduler.Complete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AppointmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Scheduler.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
