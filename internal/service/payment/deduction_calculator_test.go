package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
)

func TestSumKharchiForMonth(t *testing.T) {
	entries := []kharchi.Entry{
		{WorkerID: "w1", Date: "2024-01-05", Amount: decimal.NewFromInt(100)},
		{WorkerID: "w1", Date: "2024-01-20", Amount: decimal.NewFromInt(150)},
		{WorkerID: "w1", Date: "2024-02-01", Amount: decimal.NewFromInt(999)},
		{WorkerID: "w2", Date: "2024-01-10", Amount: decimal.NewFromInt(50)},
	}

	total := SumKharchiForMonth(entries, "w1", "2024-01")
	assert.True(t, total.Equal(decimal.NewFromInt(250)), "total = %s", total)

	assert.True(t, SumKharchiForMonth(entries, "w1", "2024-03").IsZero())
	assert.True(t, SumKharchiForMonth(nil, "w1", "2024-01").IsZero())
}

func TestSumAdvancesForMonth(t *testing.T) {
	advances := []advance.Advance{
		{WorkerID: "w1", Date: "2024-01-15", Amount: decimal.NewFromInt(500)},
		{WorkerID: "w1", Date: "2023-12-31", Amount: decimal.NewFromInt(700)},
		{WorkerID: "w2", Date: "2024-01-15", Amount: decimal.NewFromInt(300)},
	}

	total := SumAdvancesForMonth(advances, "w1", "2024-01")
	assert.True(t, total.Equal(decimal.NewFromInt(500)), "total = %s", total)
}

func TestNetPayable(t *testing.T) {
	net := NetPayable(
		decimal.NewFromInt(10000),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(3000),
	)
	assert.True(t, net.Equal(decimal.NewFromInt(4000)), "net = %s", net)
}

func TestNetPayableGoesNegative(t *testing.T) {
	net := NetPayable(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(200),
		decimal.NewFromInt(500),
		decimal.NewFromInt(800),
	)
	assert.True(t, net.Equal(decimal.NewFromInt(-500)), "net = %s", net)
}
