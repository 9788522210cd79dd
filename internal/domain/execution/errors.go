package execution

import "errors"

var (
	ErrLevelNotFound   = errors.New("execution level not found")
	ErrProjectNotFound = errors.New("project not found")
)
