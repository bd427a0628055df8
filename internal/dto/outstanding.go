package dto

import (
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OutstandingRowResponse represents one open bill in the outstanding report
// response.
type OutstandingRowResponse struct {
	LedgerName        string          `json:"ledger_name"`
	BillRef           string          `json:"bill_ref"`
	BillDate          string          `json:"bill_date"`
	BillType          string          `json:"bill_type"`
	VoucherType       string          `json:"voucher_type"`
	VoucherNo         string          `json:"voucher_no"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Balance           decimal.Decimal `json:"balance"` // Signed remaining, debit positive
	IsReceivable      bool            `json:"is_receivable"`
	DueDate           string          `json:"due_date"`
	OverdueDays       int             `json:"overdue_days"`
	AgeingBucket      string          `json:"ageing_bucket"`
}

// OnAccountBalanceResponse represents an unreferenced settlement remainder,
// reported separately from the bill-wise rows.
type OnAccountBalanceResponse struct {
	LedgerName   string          `json:"ledger_name"`
	Amount       decimal.Decimal `json:"amount"`
	IsReceivable bool            `json:"is_receivable"`
}

// LedgerSummaryResponse represents the per-ledger subtotal line.
type LedgerSummaryResponse struct {
	LedgerName      string          `json:"ledger_name"`
	ReceivableTotal decimal.Decimal `json:"receivable_total"`
	PayableTotal    decimal.Decimal `json:"payable_total"`
	BillCount       int             `json:"bill_count"`
}

// OutstandingResponse represents the bill-wise outstanding report response.
// Rows are grouped by ledger in first-encounter order; rows within a ledger
// are in bill-date order.
type OutstandingResponse struct {
	CompanyName                 string                     `json:"company_name"`
	ReportType                  string                     `json:"report_type"`
	AsOnDate                    string                     `json:"as_on_date"`
	Count                       int                        `json:"count"`
	TotalOutstandingReceivables decimal.Decimal            `json:"total_outstanding_receivables"`
	TotalOutstandingPayables    decimal.Decimal            `json:"total_outstanding_payables"`
	LedgerCount                 int                        `json:"ledger_count"`
	Data                        []OutstandingRowResponse   `json:"data"`
	OnAccount                   []OnAccountBalanceResponse `json:"on_account"`
	LedgerSummaries             []LedgerSummaryResponse    `json:"ledger_summaries"`
}

// ToOutstandingResponse converts a domain outstanding report to a DTO
// response. Pure mapping; no computation.
func ToOutstandingResponse(report *domain.OutstandingReport) OutstandingResponse {
	response := OutstandingResponse{
		CompanyName:                 report.CompanyName,
		ReportType:                  string(report.ReportType),
		AsOnDate:                    report.AsOn.Format("2006-01-02"),
		Count:                       len(report.Rows),
		TotalOutstandingReceivables: report.TotalReceivables,
		TotalOutstandingPayables:    report.TotalPayables,
		LedgerCount:                 len(report.LedgerSummaries),
		Data:                        make([]OutstandingRowResponse, len(report.Rows)),
		OnAccount:                   make([]OnAccountBalanceResponse, len(report.OnAccount)),
		LedgerSummaries:             make([]LedgerSummaryResponse, len(report.LedgerSummaries)),
	}

	for i, row := range report.Rows {
		response.Data[i] = OutstandingRowResponse{
			LedgerName:        row.LedgerName,
			BillRef:           row.BillName,
			BillDate:          row.BillDate.Format("2006-01-02"),
			BillType:          string(row.BillType),
			VoucherType:       string(row.VoucherType),
			VoucherNo:         row.VoucherNumber,
			OutstandingAmount: row.Outstanding,
			Balance:           row.Balance,
			IsReceivable:      row.IsReceivable,
			DueDate:           row.DueDate.Format("2006-01-02"),
			OverdueDays:       row.OverdueDays,
			AgeingBucket:      string(row.Bucket),
		}
	}

	for i, oa := range report.OnAccount {
		response.OnAccount[i] = OnAccountBalanceResponse{
			LedgerName:   oa.LedgerName,
			Amount:       oa.Amount,
			IsReceivable: oa.IsReceivable,
		}
	}

	for i, summary := range report.LedgerSummaries {
		response.LedgerSummaries[i] = LedgerSummaryResponse{
			LedgerName:      summary.LedgerName,
			ReceivableTotal: summary.ReceivableTotal,
			PayableTotal:    summary.PayableTotal,
			BillCount:       summary.BillCount,
		}
	}

	return response
}
