package model

// Membership links a musician to an ensemble with a role. At most one
// membership exists per (ensemble, musician) pair; updating overwrites the
// role rather than appending.
type Membership struct {
	EnsembleID int64  `json:"ensemble_id"`
	MusicianID int64  `json:"musician_id"`
	Role       string `json:"role,omitempty"`

	// Joined fields (not always populated).
	EnsembleName string `json:"ensemble_name,omitempty"`
	MusicianName string `json:"musician_name,omitempty"`
}

// Performance records that an ensemble performs a composition, with
// optional arrangement notes.
type Performance struct {
	EnsembleID    int64  `json:"ensemble_id"`
	CompositionID int64  `json:"composition_id"`
	Arrangement   string `json:"arrangement,omitempty"`

	// Joined fields (not always populated).
	EnsembleName     string `json:"ensemble_name,omitempty"`
	CompositionTitle string `json:"composition_title,omitempty"`
}

// RecordTrack places a composition on a record at a track position. A
// composition appears at most once per record; track numbers are not
// required to be unique within a record.
type RecordTrack struct {
	RecordID      int64 `json:"record_id"`
	CompositionID int64 `json:"composition_id"`
	TrackNumber   int   `json:"track_number"`

	// Joined fields (not always populated).
	RecordTitle      string `json:"record_title,omitempty"`
	CompositionTitle string `json:"composition_title,omitempty"`
}
