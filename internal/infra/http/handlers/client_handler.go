package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

type ClientHandler struct {
	Manager *usecase.ClientManager
}

func NewClientHandler(manager *usecase.ClientManager) *ClientHandler {
	return &ClientHandler{Manager: manager}
}

func (h *ClientHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	client, err := h.Manager.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

type clientPageResponse struct {
	Items []entity.Client `json:"items"`
	Total int             `json:"total"`
}

func (h *ClientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	clients, total, err := h.Manager.List(r.Context(), usecase.ListClientsInput{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientPageResponse{Items: clients, Total: total})
}

func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.Manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch usecase.UpdateClientInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	client, err := h.Manager.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
