package ledger

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/ledger"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	projectRepo       project.ProjectRepository
	billRepo          billing.BillRepository
	clientPaymentRepo billing.ClientPaymentRepository
	purchaseRepo      purchase.PurchaseRepository
	kharchiRepo       kharchi.EntryRepository
	advanceRepo       advance.AdvanceRepository
	workerPaymentRepo payment.RecordRepository
	messRepo          mess.EntryRepository
}

func NewLedgerService(
	projectRepo project.ProjectRepository,
	billRepo billing.BillRepository,
	clientPaymentRepo billing.ClientPaymentRepository,
	purchaseRepo purchase.PurchaseRepository,
	kharchiRepo kharchi.EntryRepository,
	advanceRepo advance.AdvanceRepository,
	workerPaymentRepo payment.RecordRepository,
	messRepo mess.EntryRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		projectRepo:       projectRepo,
		billRepo:          billRepo,
		clientPaymentRepo: clientPaymentRepo,
		purchaseRepo:      purchaseRepo,
		kharchiRepo:       kharchiRepo,
		advanceRepo:       advanceRepo,
		workerPaymentRepo: workerPaymentRepo,
		messRepo:          messRepo,
	}
}

func (s *LedgerServiceImpl) ProjectReceivables(ctx context.Context) ([]ledger.ReceivableSummary, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	payments, err := s.clientPaymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client payments: %w", err)
	}

	return Receivables(projects, bills, payments), nil
}

func (s *LedgerServiceImpl) MonthlyTrend(ctx context.Context, descending bool) ([]ledger.TrendPoint, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	return Trend(bills, descending), nil
}

func (s *LedgerServiceImpl) ProfitAndLoss(ctx context.Context, scope string) (ledger.ProfitLossSummary, error) {
	if scope == "" {
		scope = ledger.ScopeAll
	}

	purchases, err := s.purchaseRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list purchases: %w", err)
	}
	kharchiEntries, err := s.kharchiRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list kharchi entries: %w", err)
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list advances: %w", err)
	}
	workerPayments, err := s.workerPaymentRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list worker payments: %w", err)
	}
	messEntries, err := s.messRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list mess entries: %w", err)
	}
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list bills: %w", err)
	}
	clientPayments, err := s.clientPaymentRepo.List(ctx)
	if err != nil {
		return ledger.ProfitLossSummary{}, fmt.Errorf("list client payments: %w", err)
	}

	return ProfitAndLoss(scope, purchases, kharchiEntries, advances, workerPayments, messEntries, bills, clientPayments), nil
}

func (s *LedgerServiceImpl) GSTChecklist(ctx context.Context, month string, projectID string) ([]ledger.GSTChecklistRow, error) {
	if !validator.IsValidMonth(month) {
		return nil, ledger.ErrInvalidMonth
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	return GSTChecklist(projects, bills, month, projectID), nil
}
