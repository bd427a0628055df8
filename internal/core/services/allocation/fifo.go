package allocation

import (
	"context"
	"fmt"
	"sort"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fifoStrategy settles the oldest outstanding bill first. Settlements that
// explicitly name a bill reduce that bill directly; unreferenced settlements
// consume open bills of matching direction in bill-date order, and any
// leftover becomes an on-account balance.
type fifoStrategy struct{}

// NewFIFO returns the default First-In-First-Out allocation strategy.
func NewFIFO() Strategy {
	return fifoStrategy{}
}

func (fifoStrategy) Name() string {
	return "fifo"
}

func (s fifoStrategy) Allocate(ctx context.Context, bills []*domain.Bill, settlements []Settlement) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// FIFO queue: bill date ascending, creation order as the stable tie-break.
	sort.SliceStable(bills, func(i, j int) bool {
		if !bills[i].BillDate.Equal(bills[j].BillDate) {
			return bills[i].BillDate.Before(bills[j].BillDate)
		}
		return bills[i].Seq < bills[j].Seq
	})

	byName := make(map[string]*domain.Bill, len(bills))
	for _, b := range bills {
		byName[b.Name] = b
	}

	// Settlements walk in date order; the incoming slice order breaks ties.
	sort.SliceStable(settlements, func(i, j int) bool {
		return settlements[i].Date.Before(settlements[j].Date)
	})

	result := Result{Bills: bills, OnAccount: decimal.Zero}
	for _, stl := range settlements {
		if stl.Amount.IsZero() {
			continue
		}
		if stl.BillName != "" {
			s.allocateNamed(stl, byName, &result)
			continue
		}
		s.allocateOnAccount(stl, bills, &result)
	}

	return result, nil
}

// allocateNamed applies an explicit "Agst Ref" settlement to the bill it
// names. Over-allocation is recorded as an inconsistency, never clamped
// silently; the excess falls through to the on-account pool. A reference to
// a bill the engine never saw is treated as on-account.
func (fifoStrategy) allocateNamed(stl Settlement, byName map[string]*domain.Bill, result *Result) {
	bill, ok := byName[stl.BillName]
	if !ok {
		result.OnAccount = result.OnAccount.Add(stl.Amount)
		return
	}

	if sameDirection(bill.OriginalAmount, stl.Amount) {
		// A same-signed reference tops up nothing; the upstream package
		// posts these as separate bills, so flag it rather than guess.
		result.Inconsistencies = append(result.Inconsistencies, apperrors.InconsistencyDetail{
			VoucherID:  stl.VoucherID,
			BillName:   bill.Name,
			LedgerName: stl.LedgerName,
			Reason:     "settlement has the same sign as the bill it references",
		})
		return
	}

	remaining := bill.Remaining()
	magnitude := stl.Amount.Abs()
	applied := magnitude
	if magnitude.GreaterThan(remaining) {
		applied = remaining
		excess := magnitude.Sub(remaining)
		result.Inconsistencies = append(result.Inconsistencies, apperrors.InconsistencyDetail{
			VoucherID:  stl.VoucherID,
			BillName:   bill.Name,
			LedgerName: stl.LedgerName,
			Reason:     fmt.Sprintf("allocation exceeds bill remaining by %s", excess),
		})
		result.OnAccount = result.OnAccount.Add(signed(excess, stl.Amount))
	}
	if applied.IsPositive() {
		bill.Allocations = append(bill.Allocations, domain.BillAllocation{
			BillName:       bill.Name,
			Amount:         applied,
			Date:           stl.Date,
			RemainingAfter: remaining.Sub(applied),
		})
	}
}

// allocateOnAccount walks the FIFO queue consuming open bills whose sign is
// opposite to the settlement, spanning bills when the settlement exceeds the
// oldest bill's remaining amount.
func (fifoStrategy) allocateOnAccount(stl Settlement, bills []*domain.Bill, result *Result) {
	left := stl.Amount.Abs()
	for _, bill := range bills {
		if left.IsZero() {
			break
		}
		if sameDirection(bill.OriginalAmount, stl.Amount) {
			continue
		}
		remaining := bill.Remaining()
		if !remaining.IsPositive() {
			continue
		}
		applied := decimal.Min(left, remaining)
		bill.Allocations = append(bill.Allocations, domain.BillAllocation{
			BillName:       bill.Name,
			Amount:         applied,
			Date:           stl.Date,
			RemainingAfter: remaining.Sub(applied),
		})
		left = left.Sub(applied)
	}
	if left.IsPositive() {
		result.OnAccount = result.OnAccount.Add(signed(left, stl.Amount))
	}
}

// sameDirection reports whether two signed amounts sit on the same side.
func sameDirection(a, b decimal.Decimal) bool {
	return a.Sign() == b.Sign()
}

// signed gives magnitude the sign of reference.
func signed(magnitude, reference decimal.Decimal) decimal.Decimal {
	if reference.IsNegative() {
		return magnitude.Neg()
	}
	return magnitude
}
