package billing

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type CreateBillRequest struct {
	ProjectID    string          `json:"project_id"`
	SerialNo     *string         `json:"serial_no,omitempty"`
	BillNo       *string         `json:"bill_no,omitempty"`
	WorkNature   *string         `json:"work_nature,omitempty"`
	BillingMonth string          `json:"billing_month"`
	Amount       decimal.Decimal `json:"amount"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	CertifyDate  *string         `json:"certify_date,omitempty"`
	Remarks      *string         `json:"remarks,omitempty"`
}

func (r *CreateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.BillingMonth) {
		errs = append(errs, validator.ValidationError{Field: "billing_month", Message: "must be in YYYY-MM format"})
	}
	if r.CertifyDate != nil && *r.CertifyDate != "" {
		if _, ok := validator.IsValidDate(*r.CertifyDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "certify_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBillRequest struct {
	ID           string           `json:"-"`
	SerialNo     *string          `json:"serial_no,omitempty"`
	BillNo       *string          `json:"bill_no,omitempty"`
	WorkNature   *string          `json:"work_nature,omitempty"`
	BillingMonth *string          `json:"billing_month,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	GSTRate      *decimal.Decimal `json:"gst_rate,omitempty"`
	CertifyDate  *string          `json:"certify_date,omitempty"`
	Remarks      *string          `json:"remarks,omitempty"`
}

func (r *UpdateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BillingMonth != nil && !validator.IsValidMonth(*r.BillingMonth) {
		errs = append(errs, validator.ValidationError{Field: "billing_month", Message: "must be in YYYY-MM format"})
	}
	if r.CertifyDate != nil && *r.CertifyDate != "" {
		if _, ok := validator.IsValidDate(*r.CertifyDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "certify_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BillResponse struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"project_id"`
	SerialNo     *string         `json:"serial_no,omitempty"`
	BillNo       *string         `json:"bill_no,omitempty"`
	WorkNature   *string         `json:"work_nature,omitempty"`
	BillingMonth string          `json:"billing_month"`
	Amount       decimal.Decimal `json:"amount"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	GSTAmount    decimal.Decimal `json:"gst_amount"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	CertifyDate  *string         `json:"certify_date,omitempty"`
	Remarks      *string         `json:"remarks,omitempty"`
}

func ToBillResponse(b Bill) BillResponse {
	return BillResponse{
		ID:           b.ID,
		ProjectID:    b.ProjectID,
		SerialNo:     b.SerialNo,
		BillNo:       b.BillNo,
		WorkNature:   b.WorkNature,
		BillingMonth: b.BillingMonth,
		Amount:       b.Amount,
		GSTRate:      b.GSTRate,
		GSTAmount:    b.GSTAmount,
		GrandTotal:   b.GrandTotal,
		CertifyDate:  b.CertifyDate,
		Remarks:      b.Remarks,
	}
}

type CreateClientPaymentRequest struct {
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode *string         `json:"payment_mode,omitempty"`
	Remarks     *string         `json:"remarks,omitempty"`
}

func (r *CreateClientPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientPaymentRequest struct {
	ID          string           `json:"-"`
	Date        *string          `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaymentMode *string          `json:"payment_mode,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func (r *UpdateClientPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

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

type ClientPaymentResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode *string         `json:"payment_mode,omitempty"`
	Remarks     *string         `json:"remarks,omitempty"`
}

func ToClientPaymentResponse(p ClientPayment) ClientPaymentResponse {
	return ClientPaymentResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Date:        p.Date,
		Amount:      p.Amount,
		PaymentMode: p.PaymentMode,
		Remarks:     p.Remarks,
	}
}
