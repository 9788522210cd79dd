package worker

import "time"

// Worker - A site laborer tracked by a custom code (e.g. W-101)
type Worker struct {
	ID          string
	ProjectID   string
	Code        string
	Name        string
	Designation *string
	JoinDate    *string // ISO "YYYY-MM-DD"
	ExitDate    *string // ISO "YYYY-MM-DD", set when the worker leaves the site
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
