package model

import "strings"

// Musician represents an individual performer.
type Musician struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio,omitempty"`
}

// DisplayName returns the musician's name as shown in listings:
// first name, middle name if present, last name.
func (m Musician) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{m.FirstName, m.MiddleName, m.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
