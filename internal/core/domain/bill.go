package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillAllocation records one settlement applied against a Bill during
// allocation. Allocations are recomputed per request and never persisted.
type BillAllocation struct {
	BillName       string          `json:"billName"`
	Amount         decimal.Decimal `json:"amount"` // Positive magnitude consumed from the bill
	Date           time.Time       `json:"date"`
	RemainingAfter decimal.Decimal `json:"remainingAfter"` // Magnitude left on the bill after this allocation
}

// Bill is a named reference created by an originating voucher leg and
// tracked until fully settled.
type Bill struct {
	LedgerName       string           `json:"ledgerName"`
	Name             string           `json:"name"`
	Type             BillRefType      `json:"type"` // New Ref or Advance
	BillDate         time.Time        `json:"billDate"`
	DueDate          *time.Time       `json:"dueDate"`          // Nullable explicit due date
	CreditPeriodDays *int             `json:"creditPeriodDays"` // Nullable; overrides the ledger default
	OriginalAmount   decimal.Decimal  `json:"originalAmount"`   // Signed, debit positive
	VoucherType      VoucherType      `json:"voucherType"`
	VoucherNumber    string           `json:"voucherNumber"`
	Seq              int              `json:"seq"` // Creation order; FIFO tie-break for equal bill dates
	Allocations      []BillAllocation `json:"allocations"`
}

// AllocatedTotal returns the magnitude already consumed from this bill.
func (b *Bill) AllocatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}

// Remaining returns the unsettled magnitude of this bill.
func (b *Bill) Remaining() decimal.Decimal {
	return b.OriginalAmount.Abs().Sub(b.AllocatedTotal())
}

// RemainingSigned returns the unsettled amount carrying the bill's
// original sign (debit positive).
func (b *Bill) RemainingSigned() decimal.Decimal {
	if b.OriginalAmount.IsNegative() {
		return b.Remaining().Neg()
	}
	return b.Remaining()
}

// EffectiveDueDate resolves the bill's due date: the explicit due date when
// present, otherwise bill date plus the credit period (bill-level first,
// then the ledger default, then zero).
func (b *Bill) EffectiveDueDate(ledgerCreditPeriodDays int) time.Time {
	if b.DueDate != nil {
		return *b.DueDate
	}
	days := ledgerCreditPeriodDays
	if b.CreditPeriodDays != nil {
		days = *b.CreditPeriodDays
	}
	return b.BillDate.AddDate(0, 0, days)
}
