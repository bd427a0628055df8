package accounting_test

import (
	"testing"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/LedgerLens/ledger_reports_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func leg(ledger string, amount string) domain.Leg {
	return domain.Leg{LedgerName: ledger, Amount: decimal.RequireFromString(amount)}
}

func TestNetDebitCredit_DebitOnly(t *testing.T) {
	debit, credit := accounting.NetDebitCredit([]domain.Leg{
		leg("Acme Traders", "600.00"),
		leg("Acme Traders", "400.00"),
	})
	assert.True(t, debit.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, credit.IsZero())
}

func TestNetDebitCredit_CreditOnly(t *testing.T) {
	debit, credit := accounting.NetDebitCredit([]domain.Leg{
		leg("Acme Traders", "-250.50"),
	})
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(decimal.RequireFromString("250.50")))
}

func TestNetDebitCredit_NetsMixedLegsToOneSide(t *testing.T) {
	// A voucher posting both sides against the same ledger displays as a
	// single net value, never both columns at once.
	debit, credit := accounting.NetDebitCredit([]domain.Leg{
		leg("Acme Traders", "1000"),
		leg("Acme Traders", "-300"),
	})
	assert.True(t, debit.Equal(decimal.RequireFromString("700")))
	assert.True(t, credit.IsZero())

	debit, credit = accounting.NetDebitCredit([]domain.Leg{
		leg("Acme Traders", "300"),
		leg("Acme Traders", "-1000"),
	})
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(decimal.RequireFromString("700")))
}

func TestSignedTotal(t *testing.T) {
	total := accounting.SignedTotal([]domain.Leg{
		leg("Acme Traders", "1000"),
		leg("Acme Traders", "-300"),
		leg("Acme Traders", "-700"),
	})
	assert.True(t, total.IsZero())
	assert.True(t, accounting.SignedTotal(nil).IsZero())
}
