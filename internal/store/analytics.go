package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/erazemk/ploscarna/internal/model"
)

// The five fixed analytics reports, plus the sales-leaders listing and the
// per-ensemble summary. All are parameterless projections over the entity
// graph; queries are built with squirrel and executed read-only.

// RecordOverview returns the complete record overview: per record (and
// performing ensemble) the track count, estimated duration, personnel
// count and revenue, ordered by sales.
func RecordOverview(ctx context.Context, db *sql.DB) ([]model.RecordOverviewRow, error) {
	query, args, err := sq.Select(
		"r.title AS record_title",
		"COALESCE(e.name, '') AS ensemble_name",
		"COUNT(DISTINCT rt.composition_id) AS compositions_count",
		"ROUND(COUNT(DISTINCT rt.composition_id) * 3.5, 1) AS total_duration",
		"COUNT(DISTINCT em.musician_id) AS musicians_count",
		"r.current_year_sales",
		"ROUND(r.current_year_sales * r.retail_price, 2) AS total_revenue",
	).
		From("records r").
		LeftJoin("record_tracks rt ON r.record_id = rt.record_id").
		LeftJoin("performances p ON rt.composition_id = p.composition_id").
		LeftJoin("ensembles e ON p.ensemble_id = e.ensemble_id").
		LeftJoin("ensemble_members em ON e.ensemble_id = em.ensemble_id").
		GroupBy("r.record_id", "e.ensemble_id").
		OrderBy("r.current_year_sales DESC", "total_revenue DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building record overview query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading record overview: %w", err)
	}
	defer rows.Close()

	var report []model.RecordOverviewRow
	for rows.Next() {
		var row model.RecordOverviewRow
		if err := rows.Scan(&row.RecordTitle, &row.EnsembleName, &row.CompositionsCount,
			&row.TotalDuration, &row.MusiciansCount, &row.CurrentYearSales, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scanning record overview: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// EnsembleRepertoire ranks ensembles by the number of compositions in
// their repertoire.
func EnsembleRepertoire(ctx context.Context, db *sql.DB) ([]model.EnsembleRepertoireRow, error) {
	query, args, err := sq.Select(
		"e.name AS ensemble_name",
		"COUNT(DISTINCT p.composition_id) AS compositions_count",
		"COUNT(DISTINCT em.musician_id) AS musicians_count",
		"COUNT(DISTINCT rt.record_id) AS records_count",
	).
		From("ensembles e").
		LeftJoin("performances p ON e.ensemble_id = p.ensemble_id").
		LeftJoin("ensemble_members em ON e.ensemble_id = em.ensemble_id").
		LeftJoin("record_tracks rt ON p.composition_id = rt.composition_id").
		GroupBy("e.ensemble_id").
		OrderBy("compositions_count DESC", "musicians_count DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building ensemble repertoire query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading ensemble repertoire: %w", err)
	}
	defer rows.Close()

	var report []model.EnsembleRepertoireRow
	for rows.Next() {
		var row model.EnsembleRepertoireRow
		if err := rows.Scan(&row.EnsembleName, &row.CompositionsCount, &row.MusiciansCount, &row.RecordsCount); err != nil {
			return nil, fmt.Errorf("scanning ensemble repertoire: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// MusicianEnsembles ranks musicians by the number of ensembles they play
// in, listing the ensemble names.
func MusicianEnsembles(ctx context.Context, db *sql.DB) ([]model.MusicianEnsemblesRow, error) {
	query, args, err := sq.Select(
		musicianNameExpr+" AS musician_name",
		"COUNT(DISTINCT em.ensemble_id) AS ensembles_count",
		"COALESCE(GROUP_CONCAT(DISTINCT e.name), '') AS ensemble_names",
		"COUNT(DISTINCT p.composition_id) AS compositions_count",
	).
		From("musicians m").
		LeftJoin("ensemble_members em ON m.musician_id = em.musician_id").
		LeftJoin("ensembles e ON em.ensemble_id = e.ensemble_id").
		LeftJoin("performances p ON e.ensemble_id = p.ensemble_id").
		GroupBy("m.musician_id").
		OrderBy("ensembles_count DESC", "compositions_count DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building musician ensembles query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading musician ensembles: %w", err)
	}
	defer rows.Close()

	var report []model.MusicianEnsemblesRow
	for rows.Next() {
		var row model.MusicianEnsemblesRow
		if err := rows.Scan(&row.MusicianName, &row.EnsemblesCount, &row.EnsembleNames, &row.CompositionsCount); err != nil {
			return nil, fmt.Errorf("scanning musician ensembles: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// CompositionPopularity ranks compositions by how many records and
// ensembles carry them.
func CompositionPopularity(ctx context.Context, db *sql.DB) ([]model.CompositionPopularityRow, error) {
	query, args, err := sq.Select(
		"c.title AS composition_title",
		"c.creation_year",
		"COUNT(DISTINCT p.ensemble_id) AS ensembles_count",
		"COUNT(DISTINCT rt.record_id) AS records_count",
		"COALESCE(GROUP_CONCAT(DISTINCT e.name), '') AS performing_ensembles",
	).
		From("compositions c").
		LeftJoin("performances p ON c.composition_id = p.composition_id").
		LeftJoin("ensembles e ON p.ensemble_id = e.ensemble_id").
		LeftJoin("record_tracks rt ON c.composition_id = rt.composition_id").
		GroupBy("c.composition_id").
		OrderBy("records_count DESC", "ensembles_count DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building composition popularity query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading composition popularity: %w", err)
	}
	defer rows.Close()

	var report []model.CompositionPopularityRow
	for rows.Next() {
		var row model.CompositionPopularityRow
		var year sql.NullInt64
		if err := rows.Scan(&row.CompositionTitle, &year, &row.EnsemblesCount, &row.RecordsCount, &row.PerformingEnsembles); err != nil {
			return nil, fmt.Errorf("scanning composition popularity: %w", err)
		}
		if year.Valid {
			y := int(year.Int64)
			row.CreationYear = &y
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// RecordFinance returns the financial summary per record: revenue, profit
// and sell-through percentage. Records with no sales and no stock report
// zero sell-through.
func RecordFinance(ctx context.Context, db *sql.DB) ([]model.RecordFinanceRow, error) {
	query, args, err := sq.Select(
		"r.title AS record_title",
		"r.current_year_sales",
		"r.retail_price",
		"r.wholesale_price",
		"ROUND(r.current_year_sales * r.retail_price, 2) AS total_revenue",
		"ROUND(r.current_year_sales * (r.retail_price - r.wholesale_price), 2) AS total_profit",
		"r.remaining_stock",
		`CASE WHEN r.current_year_sales + r.remaining_stock > 0
		      THEN ROUND(r.current_year_sales * 100.0 / (r.current_year_sales + r.remaining_stock), 2)
		      ELSE 0 END AS sales_percentage`,
	).
		From("records r").
		OrderBy("total_revenue DESC", "total_profit DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building record finance query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading record finance: %w", err)
	}
	defer rows.Close()

	var report []model.RecordFinanceRow
	for rows.Next() {
		var row model.RecordFinanceRow
		if err := rows.Scan(&row.RecordTitle, &row.CurrentYearSales, &row.RetailPrice, &row.WholesalePrice,
			&row.TotalRevenue, &row.TotalProfit, &row.RemainingStock, &row.SalesPercentage); err != nil {
			return nil, fmt.Errorf("scanning record finance: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// SalesLeaders returns the top records by current-year sales.
func SalesLeaders(ctx context.Context, db *sql.DB, limit int) ([]model.SalesLeaderRow, error) {
	if limit <= 0 {
		limit = 10
	}

	query, args, err := sq.Select("title", "current_year_sales", "retail_price", "remaining_stock").
		From("records").
		OrderBy("current_year_sales DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building sales leaders query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading sales leaders: %w", err)
	}
	defer rows.Close()

	var leaders []model.SalesLeaderRow
	for rows.Next() {
		var row model.SalesLeaderRow
		if err := rows.Scan(&row.Title, &row.CurrentYearSales, &row.RetailPrice, &row.RemainingStock); err != nil {
			return nil, fmt.Errorf("scanning sales leader: %w", err)
		}
		leaders = append(leaders, row)
	}
	return leaders, rows.Err()
}

// GetEnsembleSummary returns an ensemble's repertoire size and the
// records that feature it.
func GetEnsembleSummary(ctx context.Context, db *sql.DB, name string) (*model.EnsembleSummary, error) {
	// The name may be partial or decorated; resolve it and query by ID.
	id, err := ResolveEnsembleID(ctx, db, name)
	if err != nil {
		return nil, err
	}

	summary := &model.EnsembleSummary{}
	err = db.QueryRowContext(ctx,
		`SELECT e.name, COUNT(DISTINCT p.composition_id)
		 FROM ensembles e
		 LEFT JOIN performances p ON e.ensemble_id = p.ensemble_id
		 WHERE e.ensemble_id = ?`, id,
	).Scan(&summary.Name, &summary.CompositionsCount)
	if err != nil {
		return nil, fmt.Errorf("counting ensemble compositions: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT r.record_id, r.title, r.wholesale_price, r.retail_price,
		        r.disc_count, r.current_year_sales, r.remaining_stock
		 FROM records r
		 JOIN record_tracks rt ON r.record_id = rt.record_id
		 JOIN performances p ON rt.composition_id = p.composition_id
		 WHERE p.ensemble_id = ?
		 ORDER BY r.current_year_sales DESC`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("loading ensemble records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.Title, &r.WholesalePrice, &r.RetailPrice, &r.DiscCount, &r.CurrentYearSales, &r.RemainingStock); err != nil {
			return nil, fmt.Errorf("scanning ensemble record: %w", err)
		}
		summary.Records = append(summary.Records, r)
	}
	return summary, rows.Err()
}
