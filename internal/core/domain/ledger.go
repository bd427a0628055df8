package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerNature defines the fundamental accounting nature of a ledger.
// It determines the display sign convention and the receivable/payable
// classification of its balances.
type LedgerNature string

const (
	NatureDebtor    LedgerNature = "DEBTOR"
	NatureCreditor  LedgerNature = "CREDITOR"
	NatureAsset     LedgerNature = "ASSET"
	NatureLiability LedgerNature = "LIABILITY"
	NatureIncome    LedgerNature = "INCOME"
	NatureExpense   LedgerNature = "EXPENSE"
)

// IsDebtorLike reports whether balances of this nature normally sit on the
// debit side (amounts owed to the reporting entity).
func (n LedgerNature) IsDebtorLike() bool {
	return n == NatureDebtor || n == NatureAsset || n == NatureExpense
}

// Ledger represents an account imported from the upstream accounting package,
// identified by name within a company's books.
type Ledger struct {
	Name             string          `json:"name"`             // Ledger name; unique within a company
	CompanyID        string          `json:"companyID"`        // FK -> companies.company_id (NON-NULL)
	Nature           LedgerNature    `json:"nature"`           // DEBTOR, CREDITOR, etc.
	OpeningBalance   decimal.Decimal `json:"openingBalance"`   // Signed, debit positive, as of Company.BooksFrom
	CreditPeriodDays int             `json:"creditPeriodDays"` // Default credit period for bills without one
	BillWise         bool            `json:"billWise"`         // Whether bill-wise tracking is maintained upstream
}
