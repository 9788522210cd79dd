package kharchi

import "errors"

var (
	ErrEntryNotFound  = errors.New("kharchi entry not found")
	ErrWorkerNotFound = errors.New("worker not found")
)
