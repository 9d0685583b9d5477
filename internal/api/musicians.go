package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// MusiciansHandler handles musician CRUD endpoints.
type MusiciansHandler struct {
	DB *sql.DB
}

type musicianRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio"`
}

// List handles GET /api/musicians.
func (h *MusiciansHandler) List(w http.ResponseWriter, r *http.Request) {
	musicians, err := store.ListMusicians(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list musicians")
		return
	}
	if musicians == nil {
		musicians = []model.Musician{}
	}
	jsonResponse(w, http.StatusOK, musicians)
}

// Create handles POST /api/musicians.
func (h *MusiciansHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req musicianRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		jsonError(w, http.StatusBadRequest, "first and last name required")
		return
	}

	musician, err := store.CreateMusician(r.Context(), h.DB, actorFromRequest(r),
		req.FirstName, req.MiddleName, req.LastName, req.Bio)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create musician")
		return
	}

	jsonResponse(w, http.StatusCreated, musician)
}

// Get handles GET /api/musicians/{id}.
func (h *MusiciansHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid musician id")
		return
	}

	musician, err := store.GetMusician(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get musician")
		return
	}
	if musician == nil {
		jsonError(w, http.StatusNotFound, "musician not found")
		return
	}
	jsonResponse(w, http.StatusOK, musician)
}

// Update handles PUT /api/musicians/{id}.
func (h *MusiciansHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid musician id")
		return
	}

	var req musicianRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		jsonError(w, http.StatusBadRequest, "first and last name required")
		return
	}

	if err := store.UpdateMusician(r.Context(), h.DB, actorFromRequest(r), id,
		req.FirstName, req.MiddleName, req.LastName, req.Bio); err != nil {
		storeError(w, err, "failed to update musician")
		return
	}

	musician, _ := store.GetMusician(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, musician)
}

// Delete handles DELETE /api/musicians/{id}.
func (h *MusiciansHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid musician id")
		return
	}

	if err := store.DeleteMusician(r.Context(), h.DB, actorFromRequest(r), id); err != nil {
		storeError(w, err, "failed to delete musician")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "musician deleted"})
}
