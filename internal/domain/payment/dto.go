package payment

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

// SaveRecordsRequest carries one settlement sheet: every record the user
// confirmed for the month, across any number of workers.
type SaveRecordsRequest struct {
	Records []RecordInput `json:"records"`
}

type RecordInput struct {
	ProjectID     string          `json:"project_id"`
	WorkerID      string          `json:"worker_id"`
	Month         string          `json:"month"`
	WorkAmount    decimal.Decimal `json:"work_amount"`
	MessDeduction decimal.Decimal `json:"mess_deduction"`
	IsPaid        bool            `json:"is_paid"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	Remarks       *string         `json:"remarks,omitempty"`
}

func (r *SaveRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "must not be empty"})
	}
	for _, rec := range r.Records {
		if validator.IsEmpty(rec.ProjectID) {
			errs = append(errs, validator.ValidationError{Field: "records", Message: "project_id is required"})
			break
		}
		if validator.IsEmpty(rec.WorkerID) {
			errs = append(errs, validator.ValidationError{Field: "records", Message: "worker_id is required"})
			break
		}
		if !validator.IsValidMonth(rec.Month) {
			errs = append(errs, validator.ValidationError{Field: "records", Message: "month must be in YYYY-MM format"})
			break
		}
		if rec.PaymentDate != nil && *rec.PaymentDate != "" {
			if _, ok := validator.IsValidDate(*rec.PaymentDate); !ok {
				errs = append(errs, validator.ValidationError{Field: "records", Message: "payment_date must be in YYYY-MM-DD format"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeductionPreviewRequest asks for a worker's computed deductions before
// the settlement is saved.
type DeductionPreviewRequest struct {
	WorkerID      string          `json:"worker_id"`
	Month         string          `json:"month"`
	WorkAmount    decimal.Decimal `json:"work_amount"`
	MessDeduction decimal.Decimal `json:"mess_deduction"`
}

func (r *DeductionPreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"project_id"`
	WorkerID         string          `json:"worker_id"`
	Month            string          `json:"month"`
	WorkAmount       decimal.Decimal `json:"work_amount"`
	MessDeduction    decimal.Decimal `json:"mess_deduction"`
	KharchiDeduction decimal.Decimal `json:"kharchi_deduction"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	NetPayable       decimal.Decimal `json:"net_payable"`
	IsPaid           bool            `json:"is_paid"`
	PaymentDate      *string         `json:"payment_date,omitempty"`
	Remarks          *string         `json:"remarks,omitempty"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:               rec.ID,
		ProjectID:        rec.ProjectID,
		WorkerID:         rec.WorkerID,
		Month:            rec.Month,
		WorkAmount:       rec.WorkAmount,
		MessDeduction:    rec.MessDeduction,
		KharchiDeduction: rec.KharchiDeduction,
		AdvanceDeduction: rec.AdvanceDeduction,
		NetPayable:       rec.NetPayable,
		IsPaid:           rec.IsPaid,
		PaymentDate:      rec.PaymentDate,
		Remarks:          rec.Remarks,
	}
}
