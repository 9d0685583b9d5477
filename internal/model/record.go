package model

// Record represents a pressing/release containing composition tracks.
type Record struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	WholesalePrice   float64 `json:"wholesale_price"`
	RetailPrice      float64 `json:"retail_price"`
	DiscCount        int     `json:"disc_count"`
	CurrentYearSales int     `json:"current_year_sales"`
	RemainingStock   int     `json:"remaining_stock"`
}
