package response

import (
	"errors"
	"net/http"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/assistant"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/auth"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/backup"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/ledger"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrUsernameExists):
		Conflict(w, "Username already exists")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, "Project name already exists")
	case errors.Is(err, project.ErrInvalidStatus):
		BadRequest(w, "Invalid project status", nil)

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerCodeExists):
		Conflict(w, "Worker code already exists")

	// Billing domain errors
	case errors.Is(err, billing.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, billing.ErrClientPaymentNotFound):
		NotFound(w, "Client payment not found")
	case errors.Is(err, billing.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, billing.ErrInvalidBillingMonth):
		BadRequest(w, "Invalid billing month", nil)

	// Purchase domain errors
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		NotFound(w, "Purchase not found")
	case errors.Is(err, purchase.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Kharchi domain errors
	case errors.Is(err, kharchi.ErrEntryNotFound):
		NotFound(w, "Kharchi entry not found")
	case errors.Is(err, kharchi.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Mess domain errors
	case errors.Is(err, mess.ErrEntryNotFound):
		NotFound(w, "Mess entry not found")

	// Worker payment domain errors
	case errors.Is(err, payment.ErrRecordNotFound):
		NotFound(w, "Worker payment record not found")
	case errors.Is(err, payment.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, payment.ErrInvalidMonth):
		BadRequest(w, "Invalid payment month", nil)

	// Execution domain errors
	case errors.Is(err, execution.ErrLevelNotFound):
		NotFound(w, "Execution level not found")
	case errors.Is(err, execution.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Ledger domain errors
	case errors.Is(err, ledger.ErrInvalidMonth):
		BadRequest(w, "Invalid billing month", nil)

	// Backup domain errors
	case errors.Is(err, backup.ErrInvalidBackupFile):
		BadRequest(w, "Invalid backup file", nil)

	// Assistant domain errors
	case errors.Is(err, assistant.ErrEstimatorUnavailable):
		ServiceUnavailable(w, "Estimator is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
