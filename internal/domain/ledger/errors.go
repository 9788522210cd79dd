package ledger

import "errors"

var (
	ErrInvalidMonth = errors.New("invalid billing month")
)
