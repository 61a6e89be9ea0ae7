package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/http/middleware"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

type LeadHandler struct {
	Capture     *usecase.CaptureLeadUseCase
	Manager     *usecase.LeadManager
	Convert     *usecase.ConvertLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(capture *usecase.CaptureLeadUseCase, manager *usecase.LeadManager, convert *usecase.ConvertLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Capture:     capture,
		Manager:     manager,
		Convert:     convert,
		rateLimiter: NewRateLimiter(10, rateLimitWindow), // 10 req/min per IP
	}
}

// HandleCapture is the public contact-form endpoint.
func (h *LeadHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests, please try again later"})
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.Capture.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

type leadPageResponse struct {
	Items []entity.Lead `json:"items"`
	Total int           `json:"total"`
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	leads, total, err := h.Manager.List(r.Context(), usecase.ListLeadsInput{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Source:   q.Get("source"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leadPageResponse{Items: leads, Total: total})
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.Manager.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleConvert turns a lead into a client. A partial failure (client
// created, lead not marked) still returns the client so the admin sees
// what happened.
func (h *LeadHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	client, err := h.Convert.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if client != nil {
			writeJSON(w, http.StatusInternalServerError, struct {
				Client *entity.Client `json:"client"`
				Error  string         `json:"error"`
			}{Client: client, Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadConverted()
	writeJSON(w, http.StatusCreated, client)
}
