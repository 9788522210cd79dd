package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/backup"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
	"github.com/snenterprise/sitebooks-backend-go/internal/repository/postgresql"
)

type BackupServiceImpl struct {
	db              *database.DB
	projectRepo     project.ProjectRepository
	workerRepo      worker.WorkerRepository
	billRepo        billing.BillRepository
	paymentRepo     billing.ClientPaymentRepository
	kharchiRepo     kharchi.EntryRepository
	advanceRepo     advance.AdvanceRepository
	purchaseRepo    purchase.PurchaseRepository
	executionRepo   execution.LevelRepository
	messRepo        mess.EntryRepository
	workPaymentRepo payment.RecordRepository
}

func NewBackupService(
	db *database.DB,
	projectRepo project.ProjectRepository,
	workerRepo worker.WorkerRepository,
	billRepo billing.BillRepository,
	paymentRepo billing.ClientPaymentRepository,
	kharchiRepo kharchi.EntryRepository,
	advanceRepo advance.AdvanceRepository,
	purchaseRepo purchase.PurchaseRepository,
	executionRepo execution.LevelRepository,
	messRepo mess.EntryRepository,
	workPaymentRepo payment.RecordRepository,
) backup.BackupService {
	return &BackupServiceImpl{
		db:              db,
		projectRepo:     projectRepo,
		workerRepo:      workerRepo,
		billRepo:        billRepo,
		paymentRepo:     paymentRepo,
		kharchiRepo:     kharchiRepo,
		advanceRepo:     advanceRepo,
		purchaseRepo:    purchaseRepo,
		executionRepo:   executionRepo,
		messRepo:        messRepo,
		workPaymentRepo: workPaymentRepo,
	}
}

func (s *BackupServiceImpl) Export(ctx context.Context) (backup.Snapshot, error) {
	snapshot := backup.Snapshot{
		Projects:       []project.ProjectResponse{},
		Workers:        []worker.WorkerResponse{},
		Bills:          []billing.BillResponse{},
		ClientPayments: []billing.ClientPaymentResponse{},
		Kharchi:        []kharchi.EntryResponse{},
		Advances:       []advance.AdvanceResponse{},
		Purchases:      []purchase.PurchaseResponse{},
		ExecutionData:  []execution.LevelResponse{},
		MessEntries:    []mess.EntryResponse{},
		WorkerPayments: []payment.RecordResponse{},
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list projects: %w", err)
	}
	for _, p := range projects {
		snapshot.Projects = append(snapshot.Projects, project.ToResponse(p))
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list workers: %w", err)
	}
	for _, w := range workers {
		snapshot.Workers = append(snapshot.Workers, worker.ToResponse(w))
	}

	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list bills: %w", err)
	}
	for _, b := range bills {
		snapshot.Bills = append(snapshot.Bills, billing.ToBillResponse(b))
	}

	clientPayments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list client payments: %w", err)
	}
	for _, p := range clientPayments {
		snapshot.ClientPayments = append(snapshot.ClientPayments, billing.ToClientPaymentResponse(p))
	}

	kharchiEntries, err := s.kharchiRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list kharchi entries: %w", err)
	}
	for _, e := range kharchiEntries {
		snapshot.Kharchi = append(snapshot.Kharchi, kharchi.ToResponse(e))
	}

	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list advances: %w", err)
	}
	for _, a := range advances {
		snapshot.Advances = append(snapshot.Advances, advance.ToResponse(a))
	}

	purchases, err := s.purchaseRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list purchases: %w", err)
	}
	for _, p := range purchases {
		snapshot.Purchases = append(snapshot.Purchases, purchase.ToResponse(p))
	}

	levels, err := s.executionRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list execution levels: %w", err)
	}
	for _, l := range levels {
		snapshot.ExecutionData = append(snapshot.ExecutionData, execution.ToResponse(l))
	}

	messEntries, err := s.messRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list mess entries: %w", err)
	}
	for _, e := range messEntries {
		snapshot.MessEntries = append(snapshot.MessEntries, mess.ToResponse(e))
	}

	records, err := s.workPaymentRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("list worker payments: %w", err)
	}
	for _, rec := range records {
		snapshot.WorkerPayments = append(snapshot.WorkerPayments, payment.ToResponse(rec))
	}

	return snapshot, nil
}

func (s *BackupServiceImpl) Import(ctx context.Context, raw []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return backup.ErrInvalidBackupFile
	}

	projectsRaw, ok := probe["projects"]
	if !ok {
		return backup.ErrInvalidBackupFile
	}
	var projectsProbe []json.RawMessage
	if err := json.Unmarshal(projectsRaw, &projectsProbe); err != nil {
		return backup.ErrInvalidBackupFile
	}

	var snapshot backup.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return backup.ErrInvalidBackupFile
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.projectRepo.ReplaceAll(txCtx, projectsFromResponses(snapshot.Projects)); err != nil {
			return fmt.Errorf("replace projects: %w", err)
		}
		if err := s.workerRepo.ReplaceAll(txCtx, workersFromResponses(snapshot.Workers)); err != nil {
			return fmt.Errorf("replace workers: %w", err)
		}
		if err := s.billRepo.ReplaceAll(txCtx, billsFromResponses(snapshot.Bills)); err != nil {
			return fmt.Errorf("replace bills: %w", err)
		}
		if err := s.paymentRepo.ReplaceAll(txCtx, clientPaymentsFromResponses(snapshot.ClientPayments)); err != nil {
			return fmt.Errorf("replace client payments: %w", err)
		}
		if err := s.kharchiRepo.ReplaceAll(txCtx, kharchiFromResponses(snapshot.Kharchi)); err != nil {
			return fmt.Errorf("replace kharchi entries: %w", err)
		}
		if err := s.advanceRepo.ReplaceAll(txCtx, advancesFromResponses(snapshot.Advances)); err != nil {
			return fmt.Errorf("replace advances: %w", err)
		}
		if err := s.purchaseRepo.ReplaceAll(txCtx, purchasesFromResponses(snapshot.Purchases)); err != nil {
			return fmt.Errorf("replace purchases: %w", err)
		}
		if err := s.executionRepo.ReplaceAll(txCtx, levelsFromResponses(snapshot.ExecutionData)); err != nil {
			return fmt.Errorf("replace execution levels: %w", err)
		}
		if err := s.messRepo.ReplaceAll(txCtx, messFromResponses(snapshot.MessEntries)); err != nil {
			return fmt.Errorf("replace mess entries: %w", err)
		}
		if err := s.workPaymentRepo.ReplaceAll(txCtx, recordsFromResponses(snapshot.WorkerPayments)); err != nil {
			return fmt.Errorf("replace worker payments: %w", err)
		}
		return nil
	})
}
