package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType selects which side of the outstanding report is returned.
type ReportType string

const (
	ReportReceivables ReportType = "receivables"
	ReportPayables    ReportType = "payables"
	ReportBoth        ReportType = "both"
)

// AgeingBucket classifies an overdue duration into a day-range band.
type AgeingBucket string

const (
	BucketCurrent AgeingBucket = "0-30"
	BucketThirty  AgeingBucket = "31-60"
	BucketSixty   AgeingBucket = "61-90"
	BucketNinety  AgeingBucket = ">90"
)

// BucketFor returns the ageing bucket for a whole-day overdue count.
func BucketFor(overdueDays int) AgeingBucket {
	switch {
	case overdueDays <= 30:
		return BucketCurrent
	case overdueDays <= 60:
		return BucketThirty
	case overdueDays <= 90:
		return BucketSixty
	default:
		return BucketNinety
	}
}

// OutstandingRow is one display row of the bill-wise outstanding report:
// a still-open bill with its ageing classification as of the report date.
type OutstandingRow struct {
	LedgerName    string          `json:"ledgerName"`
	BillName      string          `json:"billName"`
	BillDate      time.Time       `json:"billDate"`
	BillType      BillRefType     `json:"billType"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"`
	Outstanding   decimal.Decimal `json:"outstanding"` // Positive magnitude
	Balance       decimal.Decimal `json:"balance"`     // Signed remaining, debit positive
	IsReceivable  bool            `json:"isReceivable"`
	DueDate       time.Time       `json:"dueDate"`
	OverdueDays   int             `json:"overdueDays"`
	Bucket        AgeingBucket    `json:"bucket"`
}

// OnAccountBalance is an unreferenced settlement remainder that had no open
// bill to settle against. Reported separately from the bill-wise rows.
type OnAccountBalance struct {
	LedgerName   string          `json:"ledgerName"`
	Amount       decimal.Decimal `json:"amount"` // Positive magnitude
	IsReceivable bool            `json:"isReceivable"`
}

// LedgerOutstandingSummary is the per-ledger subtotal of the outstanding
// report, split by classification.
type LedgerOutstandingSummary struct {
	LedgerName      string          `json:"ledgerName"`
	ReceivableTotal decimal.Decimal `json:"receivableTotal"`
	PayableTotal    decimal.Decimal `json:"payableTotal"`
	BillCount       int             `json:"billCount"`
}

// OutstandingReport is the bill-wise outstanding/ageing schedule as of a
// reference date. Rows are grouped by ledger in first-encounter order and
// ordered by bill date within each ledger.
type OutstandingReport struct {
	CompanyName      string                     `json:"companyName"`
	ReportType       ReportType                 `json:"reportType"`
	AsOn             time.Time                  `json:"asOn"`
	Rows             []OutstandingRow           `json:"rows"`
	OnAccount        []OnAccountBalance         `json:"onAccount"`
	LedgerSummaries  []LedgerOutstandingSummary `json:"ledgerSummaries"`
	TotalReceivables decimal.Decimal            `json:"totalReceivables"`
	TotalPayables    decimal.Decimal            `json:"totalPayables"`
}
