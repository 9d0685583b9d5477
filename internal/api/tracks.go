package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// TracksHandler handles record track listing endpoints. Tracks are
// addressed by record title and composition title.
type TracksHandler struct {
	DB *sql.DB
}

type trackRequest struct {
	Record      string `json:"record"`
	Composition string `json:"composition"`
	TrackNumber int    `json:"track_number"`
}

type updateTrackRequest struct {
	OldRecord      string `json:"old_record"`
	OldComposition string `json:"old_composition"`
	Record         string `json:"record"`
	Composition    string `json:"composition"`
	TrackNumber    int    `json:"track_number"`
}

// List handles GET /api/tracks.
func (h *TracksHandler) List(w http.ResponseWriter, r *http.Request) {
	tracks, err := store.ListTracks(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list tracks")
		return
	}
	if tracks == nil {
		tracks = []model.RecordTrack{}
	}
	jsonResponse(w, http.StatusOK, tracks)
}

// Create handles POST /api/tracks.
func (h *TracksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Record == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "record and composition required")
		return
	}
	if req.TrackNumber < 1 || req.TrackNumber > 100 {
		jsonError(w, http.StatusBadRequest, "track number must be between 1 and 100")
		return
	}

	if err := store.AddTrack(r.Context(), h.DB, actorFromRequest(r), req.Record, req.Composition, req.TrackNumber); err != nil {
		storeError(w, err, "failed to add track")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"message": "track added"})
}

// Update handles PUT /api/tracks.
func (h *TracksHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTrackRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OldRecord == "" || req.OldComposition == "" || req.Record == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "old and new record and composition required")
		return
	}
	if req.TrackNumber < 1 || req.TrackNumber > 100 {
		jsonError(w, http.StatusBadRequest, "track number must be between 1 and 100")
		return
	}

	if err := store.UpdateTrack(r.Context(), h.DB, actorFromRequest(r),
		req.OldRecord, req.OldComposition, req.Record, req.Composition, req.TrackNumber); err != nil {
		storeError(w, err, "failed to update track")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "track updated"})
}

// Delete handles DELETE /api/tracks.
func (h *TracksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Record == "" || req.Composition == "" {
		jsonError(w, http.StatusBadRequest, "record and composition required")
		return
	}

	if err := store.DeleteTrack(r.Context(), h.DB, actorFromRequest(r), req.Record, req.Composition); err != nil {
		storeError(w, err, "failed to remove track")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "track removed"})
}
