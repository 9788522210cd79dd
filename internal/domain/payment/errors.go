package payment

import "errors"

var (
	ErrRecordNotFound = errors.New("worker payment record not found")
	ErrWorkerNotFound = errors.New("worker not found")
	ErrInvalidMonth   = errors.New("invalid payment month")
)
