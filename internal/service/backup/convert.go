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

func projectsFromResponses(in []project.ProjectResponse) []project.Project {
	out := make([]project.Project, 0, len(in))
	for _, r := range in {
		out = append(out, project.Project{
			ID:                   r.ID,
			Name:                 r.Name,
			ClientName:           r.ClientName,
			Location:             r.Location,
			StartDate:            r.StartDate,
			CompletionDate:       r.CompletionDate,
			Budget:               r.Budget,
			Spent:                r.Spent,
			CompletionPercentage: r.CompletionPercentage,
			Status:               project.Status(r.Status),
		})
	}
	return out
}

func workersFromResponses(in []worker.WorkerResponse) []worker.Worker {
	out := make([]worker.Worker, 0, len(in))
	for _, r := range in {
		out = append(out, worker.Worker{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			Code:        r.Code,
			Name:        r.Name,
			Designation: r.Designation,
			JoinDate:    r.JoinDate,
			ExitDate:    r.ExitDate,
			IsActive:    r.IsActive,
		})
	}
	return out
}

func billsFromResponses(in []billing.BillResponse) []billing.Bill {
	out := make([]billing.Bill, 0, len(in))
	for _, r := range in {
		out = append(out, billing.Bill{
			ID:           r.ID,
			ProjectID:    r.ProjectID,
			SerialNo:     r.SerialNo,
			BillNo:       r.BillNo,
			WorkNature:   r.WorkNature,
			BillingMonth: r.BillingMonth,
			Amount:       r.Amount,
			GSTRate:      r.GSTRate,
			GSTAmount:    r.GSTAmount,
			GrandTotal:   r.GrandTotal,
			CertifyDate:  r.CertifyDate,
			Remarks:      r.Remarks,
		})
	}
	return out
}

func clientPaymentsFromResponses(in []billing.ClientPaymentResponse) []billing.ClientPayment {
	out := make([]billing.ClientPayment, 0, len(in))
	for _, r := range in {
		out = append(out, billing.ClientPayment{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			Date:        r.Date,
			Amount:      r.Amount,
			PaymentMode: r.PaymentMode,
			Remarks:     r.Remarks,
		})
	}
	return out
}

func kharchiFromResponses(in []kharchi.EntryResponse) []kharchi.Entry {
	out := make([]kharchi.Entry, 0, len(in))
	for _, r := range in {
		out = append(out, kharchi.Entry{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			WorkerID:  r.WorkerID,
			Date:      r.Date,
			Amount:    r.Amount,
			Remarks:   r.Remarks,
		})
	}
	return out
}

func advancesFromResponses(in []advance.AdvanceResponse) []advance.Advance {
	out := make([]advance.Advance, 0, len(in))
	for _, r := range in {
		out = append(out, advance.Advance{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			WorkerID:    r.WorkerID,
			Date:        r.Date,
			Amount:      r.Amount,
			PaidBy:      r.PaidBy,
			PaymentMode: r.PaymentMode,
			Remarks:     r.Remarks,
		})
	}
	return out
}

func purchasesFromResponses(in []purchase.PurchaseResponse) []purchase.Purchase {
	out := make([]purchase.Purchase, 0, len(in))
	for _, r := range in {
		out = append(out, purchase.Purchase{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			Date:        r.Date,
			Vendor:      r.Vendor,
			Item:        r.Item,
			Unit:        r.Unit,
			Quantity:    r.Quantity,
			Rate:        r.Rate,
			TotalAmount: r.TotalAmount,
			PaidBy:      r.PaidBy,
			Remarks:     r.Remarks,
		})
	}
	return out
}

func levelsFromResponses(in []execution.LevelResponse) []execution.Level {
	out := make([]execution.Level, 0, len(in))
	for _, r := range in {
		out = append(out, execution.Level{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			Name:      r.Name,
			Pours:     r.Pours,
		})
	}
	return out
}

func messFromResponses(in []mess.EntryResponse) []mess.Entry {
	out := make([]mess.Entry, 0, len(in))
	for _, r := range in {
		out = append(out, mess.Entry{
			ID:                r.ID,
			ProjectID:         r.ProjectID,
			WeekStartDate:     r.WeekStartDate,
			WeekEndDate:       r.WeekEndDate,
			WorkerCount:       r.WorkerCount,
			RatePerWorker:     r.RatePerWorker,
			TotalAmount:       r.TotalAmount,
			OtherExpenses:     r.OtherExpenses,
			OtherExpensesDesc: r.OtherExpensesDesc,
			AmountPaid:        r.AmountPaid,
			Balance:           r.Balance,
			IsPaid:            r.IsPaid,
			Remarks:           r.Remarks,
		})
	}
	return out
}

func recordsFromResponses(in []payment.RecordResponse) []payment.Record {
	out := make([]payment.Record, 0, len(in))
	for _, r := range in {
		out = append(out, payment.Record{
			ID:               r.ID,
			ProjectID:        r.ProjectID,
			WorkerID:         r.WorkerID,
			Month:            r.Month,
			WorkAmount:       r.WorkAmount,
			MessDeduction:    r.MessDeduction,
			KharchiDeduction: r.KharchiDeduction,
			AdvanceDeduction: r.AdvanceDeduction,
			NetPayable:       r.NetPayable,
			IsPaid:           r.IsPaid,
			PaymentDate:      r.PaymentDate,
			Remarks:          r.Remarks,
		})
	}
	return out
}
