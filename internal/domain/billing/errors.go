package billing

import "errors"

var (
	ErrBillNotFound          = errors.New("bill not found")
	ErrClientPaymentNotFound = errors.New("client payment not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidBillingMonth   = errors.New("invalid billing month")
)
