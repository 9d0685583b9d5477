package model

// Analytics report rows. Each report is a fixed projection over the
// entity graph; see the store's analytics queries.

// RecordOverviewRow summarizes one record/ensemble pairing: track counts,
// estimated duration, personnel and revenue.
type RecordOverviewRow struct {
	RecordTitle       string  `json:"record_title"`
	EnsembleName      string  `json:"ensemble_name,omitempty"`
	CompositionsCount int     `json:"compositions_count"`
	TotalDuration     float64 `json:"total_duration"`
	MusiciansCount    int     `json:"musicians_count"`
	CurrentYearSales  int     `json:"current_year_sales"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// EnsembleRepertoireRow ranks an ensemble by repertoire size.
type EnsembleRepertoireRow struct {
	EnsembleName      string `json:"ensemble_name"`
	CompositionsCount int    `json:"compositions_count"`
	MusiciansCount    int    `json:"musicians_count"`
	RecordsCount      int    `json:"records_count"`
}

// MusicianEnsemblesRow ranks a musician by ensemble count.
type MusicianEnsemblesRow struct {
	MusicianName      string `json:"musician_name"`
	EnsemblesCount    int    `json:"ensembles_count"`
	EnsembleNames     string `json:"ensemble_names,omitempty"`
	CompositionsCount int    `json:"compositions_count"`
}

// CompositionPopularityRow ranks a composition by how widely it is
// recorded and performed.
type CompositionPopularityRow struct {
	CompositionTitle    string `json:"composition_title"`
	CreationYear        *int   `json:"creation_year,omitempty"`
	EnsemblesCount      int    `json:"ensembles_count"`
	RecordsCount        int    `json:"records_count"`
	PerformingEnsembles string `json:"performing_ensembles,omitempty"`
}

// RecordFinanceRow is the financial summary per record. Revenue is
// sales × retail price, profit is sales × (retail − wholesale), and the
// sales percentage is sold / (sold + remaining) × 100.
type RecordFinanceRow struct {
	RecordTitle      string  `json:"record_title"`
	CurrentYearSales int     `json:"current_year_sales"`
	RetailPrice      float64 `json:"retail_price"`
	WholesalePrice   float64 `json:"wholesale_price"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalProfit      float64 `json:"total_profit"`
	RemainingStock   int     `json:"remaining_stock"`
	SalesPercentage  float64 `json:"sales_percentage"`
}

// SalesLeaderRow is one entry of the top-sellers listing.
type SalesLeaderRow struct {
	Title            string  `json:"title"`
	CurrentYearSales int     `json:"current_year_sales"`
	RetailPrice      float64 `json:"retail_price"`
	RemainingStock   int     `json:"remaining_stock"`
}

// EnsembleSummary describes an ensemble's repertoire and the records it
// appears on.
type EnsembleSummary struct {
	Name              string   `json:"name"`
	CompositionsCount int      `json:"compositions_count"`
	Records           []Record `json:"records"`
}
