package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType indicates the kind of posted transaction event.
type VoucherType string

const (
	VoucherSales      VoucherType = "Sales"
	VoucherPurchase   VoucherType = "Purchase"
	VoucherPayment    VoucherType = "Payment"
	VoucherReceipt    VoucherType = "Receipt"
	VoucherJournal    VoucherType = "Journal"
	VoucherContra     VoucherType = "Contra"
	VoucherCreditNote VoucherType = "Credit Note"
	VoucherDebitNote  VoucherType = "Debit Note"
)

// BillRefType indicates how a leg's bill reference relates to the bill:
// whether it originates a new bill or settles an existing one. The values
// match the upstream accounting package's vocabulary.
type BillRefType string

const (
	BillNewRef     BillRefType = "New Ref"
	BillAdvance    BillRefType = "Advance"
	BillAgainstRef BillRefType = "Agst Ref"
	BillOnAccount  BillRefType = "On Account"
)

// Originating reports whether this reference type creates a new bill.
func (t BillRefType) Originating() bool {
	return t == BillNewRef || t == BillAdvance
}

// BillRef is the optional bill reference carried by a voucher leg.
type BillRef struct {
	Name             string      `json:"name"` // Bill identifier, e.g. the invoice number
	Type             BillRefType `json:"type"`
	BillDate         *time.Time  `json:"billDate"`         // Nullable; defaults to the voucher date
	DueDate          *time.Time  `json:"dueDate"`          // Nullable explicit due date
	CreditPeriodDays *int        `json:"creditPeriodDays"` // Nullable; overrides the ledger default
}

// Leg represents a single debit-or-credit entry within a Voucher against a
// specific ledger. Amounts are signed: debit positive, credit negative.
type Leg struct {
	LedgerName string          `json:"ledgerName"`
	Amount     decimal.Decimal `json:"amount"`
	BillRef    *BillRef        `json:"billRef"` // Nullable
}

// IsDebit reports whether this leg is a debit entry.
func (l Leg) IsDebit() bool {
	return l.Amount.IsPositive()
}

// Voucher represents one posted transaction event composed of one or more
// balanced legs. Vouchers are immutable once loaded.
type Voucher struct {
	VoucherID     string      `json:"voucherID"` // Identifier assigned by the upstream package
	CompanyID     string      `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	Date          time.Time   `json:"date"`      // Canonical calendar date, UTC midnight
	VoucherType   VoucherType `json:"voucherType"`
	VoucherNumber string      `json:"voucherNumber"`
	Narration     string      `json:"narration"` // Nullable
	SortKey       int64       `json:"sortKey"`   // Upstream internal ordering id; stable tie-break within a date
	Legs          []Leg       `json:"legs"`
}

// LegsFor returns the legs of this voucher posted against the given ledger.
func (v Voucher) LegsFor(ledgerName string) []Leg {
	var legs []Leg
	for _, leg := range v.Legs {
		if leg.LedgerName == ledgerName {
			legs = append(legs, leg)
		}
	}
	return legs
}

// IsBalanced reports whether the voucher's legs sum to zero. The engine
// trusts the upstream posting but may validate this before reporting.
func (v Voucher) IsBalanced() bool {
	sum := decimal.Zero
	for _, leg := range v.Legs {
		sum = sum.Add(leg.Amount)
	}
	return sum.IsZero()
}
