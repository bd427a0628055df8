package domain

import "github.com/shopspring/decimal"

// RawVoucherRow is one voucher leg exactly as imported from the upstream
// accounting package into the staging store. Dates are kept in their source
// textual form (day/month/year ordering varies across upstream versions);
// the transaction loader normalizes them into canonical calendar dates.
type RawVoucherRow struct {
	VoucherID        string          `json:"voucherID"`
	Date             string          `json:"date"` // Source-format date text
	VoucherType      string          `json:"voucherType"`
	VoucherNumber    string          `json:"voucherNumber"`
	VoucherSeq       int64           `json:"voucherSeq"` // Upstream internal ordering id
	LedgerName       string          `json:"ledgerName"`
	Amount           decimal.Decimal `json:"amount"`           // Signed, debit positive
	BillReference    *string         `json:"billReference"`    // Nullable
	BillType         *string         `json:"billType"`         // Nullable; New Ref, Advance, Agst Ref, On Account
	BillDate         *string         `json:"billDate"`         // Nullable source-format date text
	DueDate          *string         `json:"dueDate"`          // Nullable source-format date text
	CreditPeriodDays *int            `json:"creditPeriodDays"` // Nullable
	Narration        *string         `json:"narration"`        // Nullable
}
