package purchase

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	billingsvc "github.com/snenterprise/sitebooks-backend-go/internal/service/billing"
)

type PurchaseServiceImpl struct {
	purchaseRepo purchase.PurchaseRepository
	projectRepo  project.ProjectRepository
}

func NewPurchaseService(purchaseRepo purchase.PurchaseRepository, projectRepo project.ProjectRepository) purchase.PurchaseService {
	return &PurchaseServiceImpl{purchaseRepo: purchaseRepo, projectRepo: projectRepo}
}

func (s *PurchaseServiceImpl) CreatePurchase(ctx context.Context, req purchase.CreatePurchaseRequest) (purchase.Purchase, error) {
	if err := req.Validate(); err != nil {
		return purchase.Purchase{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if err == project.ErrProjectNotFound {
			return purchase.Purchase{}, purchase.ErrProjectNotFound
		}
		return purchase.Purchase{}, fmt.Errorf("get project: %w", err)
	}

	// Quantity and rate win over a caller-supplied total.
	total := billingsvc.SanitizeAmount(req.TotalAmount)
	if derived, ok := LineTotal(req.Quantity, req.Rate); ok {
		total = derived
	}

	created, err := s.purchaseRepo.Create(ctx, purchase.Purchase{
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		Vendor:      req.Vendor,
		Item:        req.Item,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		Rate:        req.Rate,
		TotalAmount: total,
		PaidBy:      req.PaidBy,
		Remarks:     req.Remarks,
	})
	if err != nil {
		return purchase.Purchase{}, fmt.Errorf("create purchase: %w", err)
	}

	return created, nil
}

func (s *PurchaseServiceImpl) GetPurchase(ctx context.Context, id string) (purchase.Purchase, error) {
	return s.purchaseRepo.GetByID(ctx, id)
}

func (s *PurchaseServiceImpl) ListPurchases(ctx context.Context, projectID string) ([]purchase.PurchaseResponse, error) {
	var (
		purchases []purchase.Purchase
		err       error
	)
	if projectID != "" {
		purchases, err = s.purchaseRepo.ListByProject(ctx, projectID)
	} else {
		purchases, err = s.purchaseRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	responses := make([]purchase.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, purchase.ToResponse(p))
	}

	return responses, nil
}

func (s *PurchaseServiceImpl) UpdatePurchase(ctx context.Context, req purchase.UpdatePurchaseRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.TotalAmount != nil {
		sanitized := billingsvc.SanitizeAmount(*req.TotalAmount)
		req.TotalAmount = &sanitized
	}

	// A quantity or rate change re-derives the total from the merged row.
	if req.Quantity != nil || req.Rate != nil {
		existing, err := s.purchaseRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		quantity := existing.Quantity
		if req.Quantity != nil {
			quantity = req.Quantity
		}
		rate := existing.Rate
		if req.Rate != nil {
			rate = req.Rate
		}
		if total, ok := LineTotal(quantity, rate); ok {
			req.TotalAmount = &total
		}
	}

	return s.purchaseRepo.Update(ctx, req)
}

func (s *PurchaseServiceImpl) DeletePurchase(ctx context.Context, id string) error {
	return s.purchaseRepo.Delete(ctx, id)
}
