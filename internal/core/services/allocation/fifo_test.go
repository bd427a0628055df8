package allocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/LedgerLens/ledger_reports_app/internal/core/services/allocation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
}

func bill(name string, amount int64, date time.Time, seq int) *domain.Bill {
	return &domain.Bill{
		LedgerName:     "Acme Traders",
		Name:           name,
		Type:           domain.BillNewRef,
		BillDate:       date,
		OriginalAmount: decimal.NewFromInt(amount),
		Seq:            seq,
	}
}

func settlement(billName string, amount int64, date time.Time) allocation.Settlement {
	return allocation.Settlement{
		LedgerName:  "Acme Traders",
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		BillName:    billName,
		VoucherID:   "v-" + date.Format("0102"),
		VoucherType: domain.VoucherReceipt,
	}
}

func TestFIFOName(t *testing.T) {
	assert.Equal(t, "fifo", allocation.NewFIFO().Name())
}

func TestFIFO_NamedSettlementPartiallyClearsBill(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 500, day(1), 0)}
	stls := []allocation.Settlement{settlement("INV-1", -300, day(10))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)
	assert.Empty(t, result.Inconsistencies)
	assert.True(t, result.OnAccount.IsZero())

	require.Len(t, result.Bills, 1)
	assert.True(t, result.Bills[0].Remaining().Equal(decimal.NewFromInt(200)))
	require.Len(t, result.Bills[0].Allocations, 1)
	assert.True(t, result.Bills[0].Allocations[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Bills[0].Allocations[0].RemainingAfter.Equal(decimal.NewFromInt(200)))
}

func TestFIFO_NamedSettlementClearsBillExactly(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 1000, day(10), 0)}
	stls := []allocation.Settlement{settlement("INV-1", -1000, day(21))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)
	assert.Empty(t, result.Inconsistencies)
	assert.True(t, result.Bills[0].Remaining().IsZero())
	assert.True(t, result.OnAccount.IsZero())
}

func TestFIFO_UnreferencedSettlementSpansOldestBillsFirst(t *testing.T) {
	// Deliberately out of date order; the strategy must queue by bill date.
	bills := []*domain.Bill{
		bill("INV-2", 600, day(5), 1),
		bill("INV-1", 400, day(1), 0),
	}
	stls := []allocation.Settlement{settlement("", -700, day(20))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)
	assert.True(t, result.OnAccount.IsZero())

	byName := map[string]*domain.Bill{}
	for _, b := range result.Bills {
		byName[b.Name] = b
	}
	assert.True(t, byName["INV-1"].Remaining().IsZero(), "oldest bill settles first")
	assert.True(t, byName["INV-2"].Remaining().Equal(decimal.NewFromInt(300)))
}

func TestFIFO_EqualBillDatesBreakTiesByCreationOrder(t *testing.T) {
	bills := []*domain.Bill{
		bill("INV-B", 500, day(1), 1),
		bill("INV-A", 500, day(1), 0),
	}
	stls := []allocation.Settlement{settlement("", -500, day(15))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)

	byName := map[string]*domain.Bill{}
	for _, b := range result.Bills {
		byName[b.Name] = b
	}
	assert.True(t, byName["INV-A"].Remaining().IsZero())
	assert.True(t, byName["INV-B"].Remaining().Equal(decimal.NewFromInt(500)))
}

func TestFIFO_LeftoverBecomesOnAccount(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 1000, day(1), 0)}
	stls := []allocation.Settlement{settlement("", -1200, day(15))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)
	assert.True(t, result.Bills[0].Remaining().IsZero())
	assert.True(t, result.OnAccount.Equal(decimal.NewFromInt(-200)), "leftover keeps the settlement's sign")
}

func TestFIFO_SettlementWithNoOpenBillIsFullyOnAccount(t *testing.T) {
	result, err := allocation.NewFIFO().Allocate(context.Background(), nil, []allocation.Settlement{
		settlement("", -400, day(3)),
	})
	require.NoError(t, err)
	assert.True(t, result.OnAccount.Equal(decimal.NewFromInt(-400)))
}

func TestFIFO_UnknownReferenceFallsBackToOnAccount(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 1000, day(1), 0)}
	stls := []allocation.Settlement{settlement("INV-MISSING", -250, day(9))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)
	assert.True(t, result.Bills[0].Remaining().Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.OnAccount.Equal(decimal.NewFromInt(-250)))
}

func TestFIFO_OverAllocationFlagsInconsistencyAndOverflowsOnAccount(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 500, day(1), 0)}
	stls := []allocation.Settlement{settlement("INV-1", -800, day(10))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)

	assert.True(t, result.Bills[0].Remaining().IsZero())
	assert.True(t, result.OnAccount.Equal(decimal.NewFromInt(-300)))
	require.Len(t, result.Inconsistencies, 1)
	assert.Equal(t, "INV-1", result.Inconsistencies[0].BillName)
	assert.Contains(t, result.Inconsistencies[0].Reason, "exceeds bill remaining")
}

func TestFIFO_SameSignReferenceIsFlaggedNotApplied(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 500, day(1), 0)}
	stls := []allocation.Settlement{settlement("INV-1", 100, day(10))}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)

	assert.True(t, result.Bills[0].Remaining().Equal(decimal.NewFromInt(500)))
	require.Len(t, result.Inconsistencies, 1)
	assert.Contains(t, result.Inconsistencies[0].Reason, "same sign")
}

func TestFIFO_SettlementsApplyInDateOrder(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 500, day(1), 0)}
	// Passed newest first; the earlier settlement must still land first so
	// the over-allocation is attributed to the later voucher.
	stls := []allocation.Settlement{
		settlement("INV-1", -300, day(20)),
		settlement("INV-1", -400, day(10)),
	}

	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, stls)
	require.NoError(t, err)

	require.Len(t, result.Inconsistencies, 1)
	assert.Equal(t, "v-0420", result.Inconsistencies[0].VoucherID)
	assert.True(t, result.Bills[0].Remaining().IsZero())
	assert.True(t, result.OnAccount.Equal(decimal.NewFromInt(-200)))
}

func TestFIFO_ZeroAmountSettlementIsIgnored(t *testing.T) {
	bills := []*domain.Bill{bill("INV-1", 500, day(1), 0)}
	result, err := allocation.NewFIFO().Allocate(context.Background(), bills, []allocation.Settlement{
		settlement("INV-1", 0, day(10)),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Bills[0].Allocations)
	assert.True(t, result.OnAccount.IsZero())
}

func TestFIFO_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := allocation.NewFIFO().Allocate(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
