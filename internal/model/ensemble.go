package model

// Ensemble represents a performing group (band, orchestra, quartet).
type Ensemble struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}
