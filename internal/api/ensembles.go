package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// EnsemblesHandler handles ensemble CRUD endpoints.
type EnsemblesHandler struct {
	DB *sql.DB
}

type ensembleRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// List handles GET /api/ensembles.
func (h *EnsemblesHandler) List(w http.ResponseWriter, r *http.Request) {
	ensembles, err := store.ListEnsembles(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list ensembles")
		return
	}
	if ensembles == nil {
		ensembles = []model.Ensemble{}
	}
	jsonResponse(w, http.StatusOK, ensembles)
}

// Create handles POST /api/ensembles.
func (h *EnsemblesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ensembleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	ensemble, err := store.CreateEnsemble(r.Context(), h.DB, actorFromRequest(r), req.Name, req.Type, req.Description)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create ensemble")
		return
	}

	jsonResponse(w, http.StatusCreated, ensemble)
}

// Get handles GET /api/ensembles/{id}.
func (h *EnsemblesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ensemble id")
		return
	}

	ensemble, err := store.GetEnsemble(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get ensemble")
		return
	}
	if ensemble == nil {
		jsonError(w, http.StatusNotFound, "ensemble not found")
		return
	}
	jsonResponse(w, http.StatusOK, ensemble)
}

// Update handles PUT /api/ensembles/{id}.
func (h *EnsemblesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ensemble id")
		return
	}

	var req ensembleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := store.UpdateEnsemble(r.Context(), h.DB, actorFromRequest(r), id, req.Name, req.Type, req.Description); err != nil {
		storeError(w, err, "failed to update ensemble")
		return
	}

	ensemble, _ := store.GetEnsemble(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, ensemble)
}

// Delete handles DELETE /api/ensembles/{id}.
func (h *EnsemblesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid ensemble id")
		return
	}

	if err := store.DeleteEnsemble(r.Context(), h.DB, actorFromRequest(r), id); err != nil {
		storeError(w, err, "failed to delete ensemble")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "ensemble deleted"})
}

// Summary handles GET /api/ensembles/summary?name=...: repertoire size
// and the records an ensemble appears on.
func (h *EnsemblesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	summary, err := store.GetEnsembleSummary(r.Context(), h.DB, name)
	if err != nil {
		storeError(w, err, "failed to get ensemble summary")
		return
	}
	if summary.Records == nil {
		summary.Records = []model.Record{}
	}
	jsonResponse(w, http.StatusOK, summary)
}
