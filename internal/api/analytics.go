package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// AnalyticsHandler serves the fixed analytics reports.
type AnalyticsHandler struct {
	DB *sql.DB
}

// RecordOverview handles GET /api/analytics/record-overview.
func (h *AnalyticsHandler) RecordOverview(w http.ResponseWriter, r *http.Request) {
	report, err := store.RecordOverview(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build record overview")
		return
	}
	if report == nil {
		report = []model.RecordOverviewRow{}
	}
	jsonResponse(w, http.StatusOK, report)
}

// EnsembleRepertoire handles GET /api/analytics/ensemble-repertoire.
func (h *AnalyticsHandler) EnsembleRepertoire(w http.ResponseWriter, r *http.Request) {
	report, err := store.EnsembleRepertoire(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build ensemble repertoire")
		return
	}
	if report == nil {
		report = []model.EnsembleRepertoireRow{}
	}
	jsonResponse(w, http.StatusOK, report)
}

// MusicianEnsembles handles GET /api/analytics/musician-ensembles.
func (h *AnalyticsHandler) MusicianEnsembles(w http.ResponseWriter, r *http.Request) {
	report, err := store.MusicianEnsembles(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build musician ensembles report")
		return
	}
	if report == nil {
		report = []model.MusicianEnsemblesRow{}
	}
	jsonResponse(w, http.StatusOK, report)
}

// CompositionPopularity handles GET /api/analytics/composition-popularity.
func (h *AnalyticsHandler) CompositionPopularity(w http.ResponseWriter, r *http.Request) {
	report, err := store.CompositionPopularity(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build composition popularity report")
		return
	}
	if report == nil {
		report = []model.CompositionPopularityRow{}
	}
	jsonResponse(w, http.StatusOK, report)
}

// RecordFinance handles GET /api/analytics/record-finance.
func (h *AnalyticsHandler) RecordFinance(w http.ResponseWriter, r *http.Request) {
	report, err := store.RecordFinance(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to build record finance report")
		return
	}
	if report == nil {
		report = []model.RecordFinanceRow{}
	}
	jsonResponse(w, http.StatusOK, report)
}
