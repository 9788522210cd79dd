package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/backup"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

// Import bodies are full-ledger snapshots; cap them well above any
// realistic ledger size.
const maxImportSize = 32 << 20

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type BackupHandlerImpl struct {
	backupService backup.BackupService
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &BackupHandlerImpl{backupService: backupService}
}

// Export implements BackupHandler.
func (h *BackupHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.backupService.Export(r.Context())
	if err != nil {
		slog.Error("Export backup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// Import implements BackupHandler.
func (h *BackupHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		slog.Error("Import backup read error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.backupService.Import(r.Context(), raw); err != nil {
		slog.Error("Import backup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Backup imported")
	response.SuccessWithMessage(w, "Backup restored successfully", nil)
}
