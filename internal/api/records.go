package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

// RecordsHandler handles record CRUD and sales endpoints.
type RecordsHandler struct {
	DB *sql.DB
}

type recordRequest struct {
	Title          string  `json:"title"`
	WholesalePrice float64 `json:"wholesale_price"`
	RetailPrice    float64 `json:"retail_price"`
	DiscCount      int     `json:"disc_count"`
	RemainingStock int     `json:"remaining_stock"`
}

type salesRequest struct {
	Sold int `json:"sold"`
}

// List handles GET /api/records.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListRecords(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	jsonResponse(w, http.StatusOK, records)
}

// Create handles POST /api/records.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := store.CreateRecord(r.Context(), h.DB, actorFromRequest(r),
		req.Title, req.WholesalePrice, req.RetailPrice, req.DiscCount, req.RemainingStock)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, record)
}

// Get handles GET /api/records/{id}.
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	record, err := store.GetRecord(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get record")
		return
	}
	if record == nil {
		jsonError(w, http.StatusNotFound, "record not found")
		return
	}
	jsonResponse(w, http.StatusOK, record)
}

// Update handles PUT /api/records/{id}.
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.UpdateRecord(r.Context(), h.DB, actorFromRequest(r), id,
		req.Title, req.WholesalePrice, req.RetailPrice, req.DiscCount, req.RemainingStock); err != nil {
		storeError(w, err, "failed to update record")
		return
	}

	record, _ := store.GetRecord(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, record)
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := store.DeleteRecord(r.Context(), h.DB, actorFromRequest(r), id); err != nil {
		storeError(w, err, "failed to delete record")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "record deleted"})
}

// AddSales handles POST /api/records/{id}/sales, adding sold copies to
// the current-year counter.
func (h *RecordsHandler) AddSales(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var req salesRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sold <= 0 {
		jsonError(w, http.StatusBadRequest, "sold must be positive")
		return
	}

	record, err := store.AddRecordSales(r.Context(), h.DB, actorFromRequest(r), id, req.Sold)
	if err != nil {
		storeError(w, err, "failed to update sales")
		return
	}

	jsonResponse(w, http.StatusOK, record)
}

// SalesLeaders handles GET /api/records/sales-leaders?limit=N.
func (h *RecordsHandler) SalesLeaders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	leaders, err := store.SalesLeaders(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list sales leaders")
		return
	}
	if leaders == nil {
		leaders = []model.SalesLeaderRow{}
	}
	jsonResponse(w, http.StatusOK, leaders)
}
