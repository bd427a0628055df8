package domain_test

import (
	"testing"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillRemaining(t *testing.T) {
	bill := &domain.Bill{
		Name:           "INV-1",
		OriginalAmount: decimal.NewFromInt(1000),
	}
	assert.True(t, bill.Remaining().Equal(decimal.NewFromInt(1000)))

	bill.Allocations = append(bill.Allocations, domain.BillAllocation{
		BillName: "INV-1",
		Amount:   decimal.NewFromInt(300),
	})
	assert.True(t, bill.AllocatedTotal().Equal(decimal.NewFromInt(300)))
	assert.True(t, bill.Remaining().Equal(decimal.NewFromInt(700)))
	assert.True(t, bill.RemainingSigned().Equal(decimal.NewFromInt(700)))
}

func TestBillRemainingSigned_CreditBill(t *testing.T) {
	// A purchase bill (credit side) keeps its sign on the remaining amount.
	bill := &domain.Bill{
		Name:           "PUR-9",
		OriginalAmount: decimal.NewFromInt(-500),
		Allocations: []domain.BillAllocation{
			{BillName: "PUR-9", Amount: decimal.NewFromInt(200)},
		},
	}
	assert.True(t, bill.Remaining().Equal(decimal.NewFromInt(300)))
	assert.True(t, bill.RemainingSigned().Equal(decimal.NewFromInt(-300)))
}

func TestBillEffectiveDueDate(t *testing.T) {
	billDate := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	// Explicit due date always wins.
	explicit := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	withDue := &domain.Bill{BillDate: billDate, DueDate: &explicit}
	assert.True(t, explicit.Equal(withDue.EffectiveDueDate(30)))

	// Bill-level credit period overrides the ledger default.
	fifteen := 15
	withPeriod := &domain.Bill{BillDate: billDate, CreditPeriodDays: &fifteen}
	assert.True(t, billDate.AddDate(0, 0, 15).Equal(withPeriod.EffectiveDueDate(30)))

	// Ledger default applies when the bill carries nothing.
	bare := &domain.Bill{BillDate: billDate}
	assert.True(t, billDate.AddDate(0, 0, 30).Equal(bare.EffectiveDueDate(30)))

	// No credit period anywhere: due on the bill date itself.
	assert.True(t, billDate.Equal(bare.EffectiveDueDate(0)))
}
