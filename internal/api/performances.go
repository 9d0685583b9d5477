package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// PerformancesHandler handles performance endpoints. Performances are
// addressed by ensemble name and composition title.
type PerformancesHandler struct {
	DB *sql.DB
}

type performanceRequest struct {
	Ensemble    string `json:"ensemble"`
	Composition string `json:"composition"`
	Arrangement string `json:"arrangement"`
}

type updatePerformanceRequest struct {
	OldEnsemble    string `json:"old_ensemble"`
	OldComposition string `json:"old_composition"`
	Ensemble       string `json:"ensemble"`
	Composition    string `json:"composition"`
	Arrangement    string `json:"arrangement"`
}

// List handles GET /api/performances.
func (h *PerformancesHandler) List(w http.ResponseWriter, r *http.Request) {
	performances, err := store.ListPerformances(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list performances")
		return
	}
	if performances == nil {
		performances = []model.Performance{}
	}
	jsonResponse(w, http.StatusOK, performances)
}

// Create handles POST /api/performances.
func (h *PerformancesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req performanceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Ensemble == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "ensemble and composition required")
		return
	}

	if err := store.AddPerformance(r.Context(), h.DB, actorFromRequest(r), req.Ensemble, req.Composition, req.Arrangement); err != nil {
		storeError(w, err, "failed to add performance")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"message": "performance added"})
}

// Update handles PUT /api/performances.
func (h *PerformancesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePerformanceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OldEnsemble == "" || req.OldComposition == "" || req.Ensemble == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "old and new ensemble and composition required")
		return
	}

	if err := store.UpdatePerformance(r.Context(), h.DB, actorFromRequest(r),
		req.OldEnsemble, req.OldComposition, req.Ensemble, req.Composition, req.Arrangement); err != nil {
		storeError(w, err, "failed to update performance")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "performance updated"})
}

// Delete handles DELETE /api/performances.
func (h *PerformancesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req performanceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Ensemble == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "ensemble and composition required")
		return
	}

	if err := store.DeletePerformance(r.Context(), h.DB, actorFromRequest(r), req.Ensemble, req.Composition); err != nil {
		storeError(w, err, "failed to remove performance")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "performance removed"})
}
