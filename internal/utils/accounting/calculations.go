package accounting

import (
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetDebitCredit folds the reported ledger's legs of one voucher into a
// single debit/credit pair for display. Debit legs (positive) and credit
// legs (negative) are summed separately; a well-formed display row never
// carries both, so when both sides are nonzero they are netted into a
// single debit-or-credit value.
func NetDebitCredit(legs []domain.Leg) (debit, credit decimal.Decimal) {
	debit = decimal.Zero
	credit = decimal.Zero
	for _, leg := range legs {
		if leg.Amount.IsPositive() {
			debit = debit.Add(leg.Amount)
		} else {
			credit = credit.Add(leg.Amount.Abs())
		}
	}

	if debit.IsPositive() && credit.IsPositive() {
		net := debit.Sub(credit)
		if net.IsNegative() {
			return decimal.Zero, net.Abs()
		}
		return net, decimal.Zero
	}
	return debit, credit
}

// SignedTotal sums the signed amounts of the given legs (debit positive).
func SignedTotal(legs []domain.Leg) decimal.Decimal {
	total := decimal.Zero
	for _, leg := range legs {
		total = total.Add(leg.Amount)
	}
	return total
}
