package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// CompositionsHandler handles composition CRUD endpoints.
type CompositionsHandler struct {
	DB *sql.DB
}

type compositionRequest struct {
	Title        string `json:"title"`
	CreationYear *int   `json:"creation_year"`
}

// List handles GET /api/compositions.
func (h *CompositionsHandler) List(w http.ResponseWriter, r *http.Request) {
	compositions, err := store.ListCompositions(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list compositions")
		return
	}
	if compositions == nil {
		compositions = []model.Composition{}
	}
	jsonResponse(w, http.StatusOK, compositions)
}

// Create handles POST /api/compositions.
func (h *CompositionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req compositionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}

	composition, err := store.CreateComposition(r.Context(), h.DB, actorFromRequest(r), req.Title, req.CreationYear)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, composition)
}

// Get handles GET /api/compositions/{id}.
func (h *CompositionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid composition id")
		return
	}

	composition, err := store.GetComposition(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get composition")
		return
	}
	if composition == nil {
		jsonError(w, http.StatusNotFound, "composition not found")
		return
	}
	jsonResponse(w, http.StatusOK, composition)
}

// Update handles PUT /api/compositions/{id}.
func (h *CompositionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid composition id")
		return
	}

	var req compositionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}

	if err := store.UpdateComposition(r.Context(), h.DB, actorFromRequest(r), id, req.Title, req.CreationYear); err != nil {
		storeError(w, err, "failed to update composition")
		return
	}

	composition, _ := store.GetComposition(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, composition)
}

// Delete handles DELETE /api/compositions/{id}.
func (h *CompositionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid composition id")
		return
	}

	if err := store.DeleteComposition(r.Context(), h.DB, actorFromRequest(r), id); err != nil {
		storeError(w, err, "failed to delete composition")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "composition deleted"})
}
