package mess

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekEndDate derives the last day of a mess week: six days after the
// start, so a week starting Monday ends the following Sunday.
func WeekEndDate(weekStartDate string) (string, error) {
	start, err := time.Parse("2006-01-02", weekStartDate)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, 6).Format("2006-01-02"), nil
}

// TotalAmount is the headcount bill for the week: workerCount * rate.
func TotalAmount(workerCount int, ratePerWorker decimal.Decimal) decimal.Decimal {
	return ratePerWorker.Mul(decimal.NewFromInt(int64(workerCount)))
}

// Balance is what the mess is still owed after the week's payment:
//
//	balance = (total + otherExpenses) - amountPaid
func Balance(totalAmount, otherExpenses, amountPaid decimal.Decimal) decimal.Decimal {
	return totalAmount.Add(otherExpenses).Sub(amountPaid)
}
