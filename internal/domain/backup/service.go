package backup

import "context"

type BackupService interface {
	// Export collects every collection into one snapshot document.
	Export(ctx context.Context) (Snapshot, error)
	// Import validates raw backup JSON and atomically replaces all ten
	// collections with its contents.
	Import(ctx context.Context, raw []byte) error
}
