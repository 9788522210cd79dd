package mess

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	ProjectID         string          `json:"project_id"`
	WeekStartDate     string          `json:"week_start_date"`
	WorkerCount       int             `json:"worker_count"`
	RatePerWorker     decimal.Decimal `json:"rate_per_worker"`
	OtherExpenses     decimal.Decimal `json:"other_expenses"`
	OtherExpensesDesc *string         `json:"other_expenses_desc,omitempty"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	IsPaid            *bool           `json:"is_paid,omitempty"`
	Remarks           *string         `json:"remarks,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "week_start_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.WorkerCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "worker_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID                string           `json:"-"`
	ProjectID         *string          `json:"project_id,omitempty"`
	WeekStartDate     *string          `json:"week_start_date,omitempty"`
	WeekEndDate       *string          `json:"week_end_date,omitempty"`
	WorkerCount       *int             `json:"worker_count,omitempty"`
	RatePerWorker     *decimal.Decimal `json:"rate_per_worker,omitempty"`
	OtherExpenses     *decimal.Decimal `json:"other_expenses,omitempty"`
	OtherExpensesDesc *string          `json:"other_expenses_desc,omitempty"`
	AmountPaid        *decimal.Decimal `json:"amount_paid,omitempty"`
	IsPaid            *bool            `json:"is_paid,omitempty"`
	Remarks           *string          `json:"remarks,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WeekStartDate != nil {
		if _, ok := validator.IsValidDate(*r.WeekStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "week_start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.WeekEndDate != nil {
		if _, ok := validator.IsValidDate(*r.WeekEndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "week_end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.WorkerCount != nil && *r.WorkerCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "worker_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID                string          `json:"id"`
	ProjectID         string          `json:"project_id"`
	WeekStartDate     string          `json:"week_start_date"`
	WeekEndDate       string          `json:"week_end_date"`
	WorkerCount       int             `json:"worker_count"`
	RatePerWorker     decimal.Decimal `json:"rate_per_worker"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	OtherExpenses     decimal.Decimal `json:"other_expenses"`
	OtherExpensesDesc *string         `json:"other_expenses_desc,omitempty"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	Balance           decimal.Decimal `json:"balance"`
	IsPaid            bool            `json:"is_paid"`
	Remarks           *string         `json:"remarks,omitempty"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		WeekStartDate:     e.WeekStartDate,
		WeekEndDate:       e.WeekEndDate,
		WorkerCount:       e.WorkerCount,
		RatePerWorker:     e.RatePerWorker,
		TotalAmount:       e.TotalAmount,
		OtherExpenses:     e.OtherExpenses,
		OtherExpensesDesc: e.OtherExpensesDesc,
		AmountPaid:        e.AmountPaid,
		Balance:           e.Balance,
		IsPaid:            e.IsPaid,
		Remarks:           e.Remarks,
	}
}
