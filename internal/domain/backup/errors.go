package backup

import "errors"

var (
	// ErrInvalidBackupFile means the uploaded document is not a ledger
	// backup: it is not JSON, or its "projects" key is missing or not
	// an array.
	ErrInvalidBackupFile = errors.New("invalid backup file")
)
