package dto

import (
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerStatementRowResponse represents one transaction row in the ledger
// statement response. Balances are unsigned magnitudes; the side is encoded
// separately, never mixed into the numeric field.
type LedgerStatementRowResponse struct {
	Date          string          `json:"date"` // ISO calendar date
	Particulars   string          `json:"particulars"`
	VoucherType   string          `json:"voucher_type"`
	VoucherNumber string          `json:"voucher_number"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceType   string          `json:"balance_type"` // Dr or Cr
}

// LedgerStatementResponse represents the ledger statement report response
type LedgerStatementResponse struct {
	CompanyName        string                       `json:"company_name"`
	LedgerName         string                       `json:"ledger_name"`
	FromDate           string                       `json:"from_date"`
	ToDate             string                       `json:"to_date"`
	OpeningBalance     decimal.Decimal              `json:"opening_balance"`
	OpeningBalanceType string                       `json:"opening_balance_type"`
	TotalDebit         decimal.Decimal              `json:"total_debit"`
	TotalCredit        decimal.Decimal              `json:"total_credit"`
	ClosingBalance     decimal.Decimal              `json:"closing_balance"`
	ClosingBalanceType string                       `json:"closing_balance_type"`
	TotalTransactions  int                          `json:"total_transactions"`
	Transactions       []LedgerStatementRowResponse `json:"transactions"`
}

// ToLedgerStatementResponse converts a domain ledger statement to a DTO
// response. Pure mapping: amounts pass through as raw decimals and dates
// as ISO strings; any locale formatting belongs to the presentation layer.
func ToLedgerStatementResponse(statement *domain.LedgerStatement) LedgerStatementResponse {
	response := LedgerStatementResponse{
		CompanyName:        statement.CompanyName,
		LedgerName:         statement.LedgerName,
		FromDate:           statement.From.Format("2006-01-02"),
		ToDate:             statement.To.Format("2006-01-02"),
		OpeningBalance:     statement.OpeningBalance.Abs(),
		OpeningBalanceType: string(domain.SideOf(statement.OpeningBalance)),
		TotalDebit:         statement.TotalDebit,
		TotalCredit:        statement.TotalCredit,
		ClosingBalance:     statement.ClosingBalance.Abs(),
		ClosingBalanceType: string(domain.SideOf(statement.ClosingBalance)),
		TotalTransactions:  len(statement.Rows),
		Transactions:       make([]LedgerStatementRowResponse, len(statement.Rows)),
	}

	for i, row := range statement.Rows {
		response.Transactions[i] = LedgerStatementRowResponse{
			Date:          row.Date.Format("2006-01-02"),
			Particulars:   row.Particulars,
			VoucherType:   string(row.VoucherType),
			VoucherNumber: row.VoucherNumber,
			Debit:         row.Debit,
			Credit:        row.Credit,
			Balance:       row.Balance.Abs(),
			BalanceType:   string(domain.SideOf(row.Balance)),
		}
	}

	return response
}
