package kharchi

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

// SaveEntriesRequest carries a batch of daily payouts, typically one
// sheet of the site register at a time.
type SaveEntriesRequest struct {
	Entries []EntryInput `json:"entries"`
}

type EntryInput struct {
	ProjectID string          `json:"project_id"`
	WorkerID  string          `json:"worker_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Remarks   *string         `json:"remarks,omitempty"`
}

func (r *SaveEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must not be empty"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.ProjectID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "project_id is required"})
			break
		}
		if validator.IsEmpty(e.WorkerID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "worker_id is required"})
			break
		}
		if _, ok := validator.IsValidDate(e.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "date must be in YYYY-MM-DD format"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	WorkerID  string          `json:"worker_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Remarks   *string         `json:"remarks,omitempty"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		WorkerID:  e.WorkerID,
		Date:      e.Date,
		Amount:    e.Amount,
		Remarks:   e.Remarks,
	}
}
