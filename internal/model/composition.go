package model

// Composition represents a musical work, independent of any recording.
// CreationYear is nil when unknown.
type Composition struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CreationYear *int   `json:"creation_year,omitempty"`
}
