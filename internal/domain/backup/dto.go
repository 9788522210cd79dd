package backup

import (
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
)

// Snapshot is the full-ledger backup document. The ten keys and their
// camelCase spellings are the on-disk file format users already have,
// so they stay exactly as-is.
type Snapshot struct {
	Projects       []project.ProjectResponse       `json:"projects"`
	Workers        []worker.WorkerResponse         `json:"workers"`
	Bills          []billing.BillResponse          `json:"bills"`
	ClientPayments []billing.ClientPaymentResponse `json:"clientPayments"`
	Kharchi        []kharchi.EntryResponse         `json:"kharchi"`
	Advances       []advance.AdvanceResponse       `json:"advances"`
	Purchases      []purchase.PurchaseResponse     `json:"purchases"`
	ExecutionData  []execution.LevelResponse       `json:"executionData"`
	MessEntries    []mess.EntryResponse            `json:"messEntries"`
	WorkerPayments []payment.RecordResponse        `json:"workerPayments"`
}
