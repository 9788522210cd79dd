package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/assistant"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/auth"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/backup"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"username exists", auth.ErrUsernameExists, http.StatusConflict, "CONFLICT"},
		{"project not found", project.ErrProjectNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"worker code exists", worker.ErrWorkerCodeExists, http.StatusConflict, "CONFLICT"},
		{"bill not found", billing.ErrBillNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid billing month", billing.ErrInvalidBillingMonth, http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid backup file", backup.ErrInvalidBackupFile, http.StatusBadRequest, "BAD_REQUEST"},
		{"estimator unavailable", assistant.ErrEstimatorUnavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := validator.ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "date", Message: "must be in YYYY-MM-DD format"},
	}

	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "is required", body.Error.Details["name"])
	assert.Equal(t, "must be in YYYY-MM-DD format", body.Error.Details["date"])
}
