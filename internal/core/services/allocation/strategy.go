// Package allocation matches settlement legs against open bills to compute
// the outstanding amount remaining per bill. The matching policy for
// settlements that do not name a bill is a named, swappable Strategy so it
// can be corrected against upstream semantics without touching callers.
package allocation

import (
	"context"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Settlement is one leg that reduces open bills on a ledger: either an
// explicit reference to an existing bill, or an unreferenced leg of the
// opposite sign treated per the strategy's on-account policy.
type Settlement struct {
	LedgerName    string
	Amount        decimal.Decimal // Signed, debit positive
	Date          time.Time
	BillName      string // Empty for unreferenced (on-account) settlements
	VoucherID     string
	VoucherType   domain.VoucherType
	VoucherNumber string
}

// Result holds the outcome of allocating one ledger's settlements.
type Result struct {
	// Bills carries every originating bill with its allocations applied.
	// Callers filter to bills with a nonzero remaining amount.
	Bills []*domain.Bill
	// OnAccount is the signed leftover of settlements that found no open
	// bill to settle against. Reported separately from bill-wise rows.
	OnAccount decimal.Decimal
	// Inconsistencies lists detected invariant violations (e.g. an explicit
	// reference exceeding its bill's remaining amount). The allocation is
	// still completed best-effort so the caller can decide the policy.
	Inconsistencies []apperrors.InconsistencyDetail
}

// Strategy allocates settlements against a ledger's bills.
type Strategy interface {
	// Name identifies the policy, e.g. "fifo".
	Name() string
	// Allocate applies settlements to bills. Bills and settlements belong
	// to a single ledger and are already restricted to the as-of date.
	Allocate(ctx context.Context, bills []*domain.Bill, settlements []Settlement) (Result, error)
}
