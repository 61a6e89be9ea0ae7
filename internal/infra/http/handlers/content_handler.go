package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

// ContentHandler serves the public site content and the admin screens that
// edit it: packages, areas served, testimonial videos, site texts and
// background-image uploads.
type ContentHandler struct {
	Manager *usecase.ContentManager
}

func NewContentHandler(manager *usecase.ContentManager) *ContentHandler {
	return &ContentHandler{Manager: manager}
}

// ----- packages -----

func (h *ContentHandler) HandleListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Manager.ListPackages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

func (h *ContentHandler) HandleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var input usecase.PackageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	pkg, err := h.Manager.CreatePackage(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pkg)
}

func (h *ContentHandler) HandleUpdatePackage(w http.ResponseWriter, r *http.Request) {
	var input usecase.PackageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	pkg, err := h.Manager.UpdatePackage(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (h *ContentHandler) HandleDeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----- areas -----

func (h *ContentHandler) HandleListAreas(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	areas, err := h.Manager.ListAreas(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *ContentHandler) HandleCreateArea(w http.ResponseWriter, r *http.Request) {
	var input usecase.AreaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	area, err := h.Manager.CreateArea(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, area)
}

func (h *ContentHandler) HandleUpdateArea(w http.ResponseWriter, r *http.Request) {
	var input usecase.AreaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	area, err := h.Manager.UpdateArea(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, area)
}

func (h *ContentHandler) HandleDeleteArea(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.DeleteArea(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----- videos -----

func (h *ContentHandler) HandleListVideos(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	videos, err := h.Manager.ListVideos(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *ContentHandler) HandleCreateVideo(w http.ResponseWriter, r *http.Request) {
	var input usecase.VideoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	video, err := h.Manager.CreateVideo(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, video)
}

func (h *ContentHandler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	var input usecase.VideoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	video, err := h.Manager.UpdateVideo(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

func (h *ContentHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.Manager.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----- site texts -----

func (h *ContentHandler) HandleGetTexts(w http.ResponseWriter, r *http.Request) {
	var keys []string
	if raw := r.URL.Query().Get("keys"); raw != "" {
		keys = strings.Split(raw, ",")
	}
	texts, err := h.Manager.GetTexts(r.Context(), keys)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, texts)
}

func (h *ContentHandler) HandleSetTexts(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if err := h.Manager.SetTexts(r.Context(), values); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----- image upload -----

const maxUploadSize = 10 << 20 // 10 MiB

func (h *ContentHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file field is required"})
		return
	}
	defer file.Close()

	url, err := h.Manager.UploadImage(r.Context(), bucket, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
