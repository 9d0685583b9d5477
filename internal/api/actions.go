package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// ActionsHandler serves the authenticated user's audit log.
type ActionsHandler struct {
	DB *sql.DB
}

// List handles GET /api/actions?type=...&from=...&to=... for the
// authenticated user. Dates use the 2006-01-02 form.
func (h *ActionsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	filter := store.ActionFilter{ActionType: r.URL.Query().Get("type")}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid from date")
			return
		}
		filter.From = t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid to date")
			return
		}
		filter.To = t
	}

	actions, err := store.ListActions(r.Context(), h.DB, claims.Email, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list actions")
		return
	}
	if actions == nil {
		actions = []model.UserAction{}
	}
	jsonResponse(w, http.StatusOK, actions)
}

// Clear handles DELETE /api/actions, removing the authenticated user's
// audit entries.
func (h *ActionsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	n, err := store.ClearActions(r.Context(), h.DB, claims.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to clear actions")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int64{"cleared": n})
}
