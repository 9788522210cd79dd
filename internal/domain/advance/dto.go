package advance

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	ProjectID   string          `json:"project_id"`
	WorkerID    string          `json:"worker_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      *string         `json:"paid_by,omitempty"`
	PaymentMode *string         `json:"payment_mode,omitempty"`
	Remarks     *string         `json:"remarks,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	ID          string           `json:"-"`
	Date        *string          `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaidBy      *string          `json:"paid_by,omitempty"`
	PaymentMode *string          `json:"payment_mode,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	WorkerID    string          `json:"worker_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      *string         `json:"paid_by,omitempty"`
	PaymentMode *string         `json:"payment_mode,omitempty"`
	Remarks     *string         `json:"remarks,omitempty"`
}

func ToResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		WorkerID:    a.WorkerID,
		Date:        a.Date,
		Amount:      a.Amount,
		PaidBy:      a.PaidBy,
		PaymentMode: a.PaymentMode,
		Remarks:     a.Remarks,
	}
}
