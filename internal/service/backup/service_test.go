package backup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/backup"
)

// Validation rejects bad documents before any repository is touched, so a
// service with nil dependencies is enough here.
func newValidationOnlyService() backup.BackupService {
	return NewBackupService(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
}

func TestImport_RejectsNonJSON(t *testing.T) {
	svc := newValidationOnlyService()

	err := svc.Import(context.Background(), []byte("definitely not json"))
	assert.ErrorIs(t, err, backup.ErrInvalidBackupFile)
}

func TestImport_RejectsJSONArray(t *testing.T) {
	svc := newValidationOnlyService()

	err := svc.Import(context.Background(), []byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, backup.ErrInvalidBackupFile)
}

func TestImport_RejectsMissingProjectsKey(t *testing.T) {
	svc := newValidationOnlyService()

	err := svc.Import(context.Background(), []byte(`{"workers": []}`))
	assert.ErrorIs(t, err, backup.ErrInvalidBackupFile)
}

func TestImport_RejectsNonArrayProjects(t *testing.T) {
	svc := newValidationOnlyService()

	err := svc.Import(context.Background(), []byte(`{"projects": {"id": "p-1"}}`))
	assert.ErrorIs(t, err, backup.ErrInvalidBackupFile)

	err = svc.Import(context.Background(), []byte(`{"projects": "p-1"}`))
	assert.ErrorIs(t, err, backup.ErrInvalidBackupFile)
}
