package purchase

import "errors"

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrProjectNotFound  = errors.New("project not found")
)
