package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrWorkerNotFound  = errors.New("worker not found")
)
