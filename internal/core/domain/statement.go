package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSide is the display side of a balance: Dr for debit, Cr for credit.
// Balances are kept signed internally (debit positive); the side is derived
// from the sign only at presentation time.
type BalanceSide string

const (
	DebitSide  BalanceSide = "Dr"
	CreditSide BalanceSide = "Cr"
)

// SideOf returns the display side for a signed balance. Zero shows as Dr.
func SideOf(balance decimal.Decimal) BalanceSide {
	if balance.IsNegative() {
		return CreditSide
	}
	return DebitSide
}

// LedgerStatementRow is one display row of a ledger statement: a voucher
// folded to a single line with the running balance after it.
type LedgerStatementRow struct {
	Date          time.Time       `json:"date"`
	Particulars   string          `json:"particulars"` // Counter-ledger name(s), or the voucher type as fallback
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"` // Signed running balance after this row
}

// LedgerStatement is the per-account running-balance report for a period.
// Invariant: ClosingBalance = OpeningBalance + TotalDebit - TotalCredit.
type LedgerStatement struct {
	CompanyName    string               `json:"companyName"`
	LedgerName     string               `json:"ledgerName"`
	From           time.Time            `json:"from"`
	To             time.Time            `json:"to"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"` // Signed, as of From
	TotalDebit     decimal.Decimal      `json:"totalDebit"`
	TotalCredit    decimal.Decimal      `json:"totalCredit"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"` // Signed, after the last row
	Rows           []LedgerStatementRow `json:"rows"`
}
