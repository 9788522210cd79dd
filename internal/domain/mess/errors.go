package mess

import "errors"

var (
	ErrEntryNotFound = errors.New("mess entry not found")
)
