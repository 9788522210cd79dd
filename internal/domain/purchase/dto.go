package purchase

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreatePurchaseRequest struct {
	ProjectID   string           `json:"project_id"`
	Date        string           `json:"date"`
	Vendor      *string          `json:"vendor,omitempty"`
	Item        string           `json:"item"`
	Unit        *string          `json:"unit,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	PaidBy      *string          `json:"paid_by,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func (r *CreatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePurchaseRequest struct {
	ID          string           `json:"-"`
	Date        *string          `json:"date,omitempty"`
	Vendor      *string          `json:"vendor,omitempty"`
	Item        *string          `json:"item,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	PaidBy      *string          `json:"paid_by,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func (r *UpdatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Item != nil && validator.IsEmpty(*r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PurchaseResponse struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"project_id"`
	Date        string           `json:"date"`
	Vendor      *string          `json:"vendor,omitempty"`
	Item        string           `json:"item"`
	Unit        *string          `json:"unit,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	PaidBy      *string          `json:"paid_by,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func ToResponse(p Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Date:        p.Date,
		Vendor:      p.Vendor,
		Item:        p.Item,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		Rate:        p.Rate,
		TotalAmount: p.TotalAmount,
		PaidBy:      p.PaidBy,
		Remarks:     p.Remarks,
	}
}
