package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// MembersHandler handles ensemble membership endpoints. Memberships are
// addressed by display names, not IDs.
type MembersHandler struct {
	DB *sql.DB
}

type memberRequest struct {
	Ensemble string `json:"ensemble"`
	Musician string `json:"musician"`
	Role     string `json:"role"`
}

type updateMemberRequest struct {
	OldEnsemble string `json:"old_ensemble"`
	OldMusician string `json:"old_musician"`
	Ensemble    string `json:"ensemble"`
	Musician    string `json:"musician"`
	Role        string `json:"role"`
}

// List handles GET /api/members.
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := store.ListMemberships(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	if memberships == nil {
		memberships = []model.Membership{}
	}
	jsonResponse(w, http.StatusOK, memberships)
}

// Create handles POST /api/members.
func (h *MembersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Ensemble == "" || req.Musician == "" {
		jsonError(w, http.StatusBadRequest, "ensemble and musician required")
		return
	}

	if err := store.AddMembership(r.Context(), h.DB, actorFromRequest(r), req.Ensemble, req.Musician, req.Role); err != nil {
		storeError(w, err, "failed to add member")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"message": "member added"})
}

// Update handles PUT /api/members.
func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OldEnsemble == "" || req.OldMusician == "" || req.Ensemble == "" || req.Musician == "" {
		jsonError(w, http.StatusBadRequest, "old and new ensemble and musician required")
		return
	}

	if err := store.UpdateMembership(r.Context(), h.DB, actorFromRequest(r),
		req.OldEnsemble, req.OldMusician, req.Ensemble, req.Musician, req.Role); err != nil {
		storeError(w, err, "failed to update member")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "member updated"})
}

// Delete handles DELETE /api/members.
func (h *MembersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Ensemble == "" || req.Musician == "" {
		jsonError(w, http.StatusBadRequest, "ensemble and musician required")
		return
	}

	if err := store.DeleteMembership(r.Context(), h.DB, actorFromRequest(r), req.Ensemble, req.Musician); err != nil {
		storeError(w, err, "failed to remove member")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "member removed"})
}
