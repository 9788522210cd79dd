package execution

import "time"

// Pour - One concrete pour inside a level. Both fields are optional
// because the site fills the register in as work happens.
type Pour struct {
	Date  *string `json:"date,omitempty"` // ISO "YYYY-MM-DD"
	Cycle *int    `json:"cycle,omitempty"`
}

// Level - A structural level of a project with its pour history.
// Pours is stored as a jsonb document, sparse entries included.
type Level struct {
	ID        string
	ProjectID string
	Name      string
	Pours     []Pour
	CreatedAt time.Time
	UpdatedAt time.Time
}
