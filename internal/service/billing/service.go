package billing

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
)

type BillingServiceImpl struct {
	billRepo    billing.BillRepository
	paymentRepo billing.ClientPaymentRepository
	projectRepo project.ProjectRepository
}

func NewBillingService(
	billRepo billing.BillRepository,
	paymentRepo billing.ClientPaymentRepository,
	projectRepo project.ProjectRepository,
) billing.BillingService {
	return &BillingServiceImpl{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		projectRepo: projectRepo,
	}
}

func (s *BillingServiceImpl) CreateBill(ctx context.Context, req billing.CreateBillRequest) (billing.Bill, error) {
	if err := req.Validate(); err != nil {
		return billing.Bill{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if err == project.ErrProjectNotFound {
			return billing.Bill{}, billing.ErrProjectNotFound
		}
		return billing.Bill{}, fmt.Errorf("get project: %w", err)
	}

	amount := SanitizeAmount(req.Amount)
	rate := SanitizeAmount(req.GSTRate)
	gst, grand := CalculateGST(amount, rate)

	bill := billing.Bill{
		ProjectID:    req.ProjectID,
		SerialNo:     req.SerialNo,
		BillNo:       req.BillNo,
		WorkNature:   req.WorkNature,
		BillingMonth: req.BillingMonth,
		Amount:       amount,
		GSTRate:      rate,
		GSTAmount:    gst,
		GrandTotal:   grand,
		CertifyDate:  req.CertifyDate,
		Remarks:      req.Remarks,
	}

	created, err := s.billRepo.Create(ctx, bill)
	if err != nil {
		return billing.Bill{}, fmt.Errorf("create bill: %w", err)
	}

	return created, nil
}

func (s *BillingServiceImpl) GetBill(ctx context.Context, id string) (billing.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

func (s *BillingServiceImpl) ListBills(ctx context.Context, projectID string) ([]billing.BillResponse, error) {
	var (
		bills []billing.Bill
		err   error
	)
	if projectID != "" {
		bills, err = s.billRepo.ListByProject(ctx, projectID)
	} else {
		bills, err = s.billRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	responses := make([]billing.BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, billing.ToBillResponse(b))
	}

	return responses, nil
}

// UpdateBill applies the requested changes and re-derives GST amount and
// grand total from whatever amount and rate the bill ends up with.
func (s *BillingServiceImpl) UpdateBill(ctx context.Context, req billing.UpdateBillRequest) (billing.Bill, error) {
	if err := req.Validate(); err != nil {
		return billing.Bill{}, err
	}

	bill, err := s.billRepo.GetByID(ctx, req.ID)
	if err != nil {
		return billing.Bill{}, err
	}

	if req.SerialNo != nil {
		bill.SerialNo = req.SerialNo
	}
	if req.BillNo != nil {
		bill.BillNo = req.BillNo
	}
	if req.WorkNature != nil {
		bill.WorkNature = req.WorkNature
	}
	if req.BillingMonth != nil {
		bill.BillingMonth = *req.BillingMonth
	}
	if req.Amount != nil {
		bill.Amount = SanitizeAmount(*req.Amount)
	}
	if req.GSTRate != nil {
		bill.GSTRate = SanitizeAmount(*req.GSTRate)
	}
	if req.CertifyDate != nil {
		bill.CertifyDate = req.CertifyDate
	}
	if req.Remarks != nil {
		bill.Remarks = req.Remarks
	}

	bill.GSTAmount, bill.GrandTotal = CalculateGST(bill.Amount, bill.GSTRate)

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return billing.Bill{}, fmt.Errorf("update bill: %w", err)
	}

	return bill, nil
}

func (s *BillingServiceImpl) DeleteBill(ctx context.Context, id string) error {
	return s.billRepo.Delete(ctx, id)
}

func (s *BillingServiceImpl) CreateClientPayment(ctx context.Context, req billing.CreateClientPaymentRequest) (billing.ClientPayment, error) {
	if err := req.Validate(); err != nil {
		return billing.ClientPayment{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if err == project.ErrProjectNotFound {
			return billing.ClientPayment{}, billing.ErrProjectNotFound
		}
		return billing.ClientPayment{}, fmt.Errorf("get project: %w", err)
	}

	payment := billing.ClientPayment{
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		Amount:      SanitizeAmount(req.Amount),
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return billing.ClientPayment{}, fmt.Errorf("create client payment: %w", err)
	}

	return created, nil
}

func (s *BillingServiceImpl) ListClientPayments(ctx context.Context, projectID string) ([]billing.ClientPaymentResponse, error) {
	var (
		payments []billing.ClientPayment
		err      error
	)
	if projectID != "" {
		payments, err = s.paymentRepo.ListByProject(ctx, projectID)
	} else {
		payments, err = s.paymentRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list client payments: %w", err)
	}

	responses := make([]billing.ClientPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, billing.ToClientPaymentResponse(p))
	}

	return responses, nil
}

func (s *BillingServiceImpl) UpdateClientPayment(ctx context.Context, req billing.UpdateClientPaymentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Amount != nil {
		sanitized := SanitizeAmount(*req.Amount)
		req.Amount = &sanitized
	}

	return s.paymentRepo.Update(ctx, req)
}

func (s *BillingServiceImpl) DeleteClientPayment(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}
