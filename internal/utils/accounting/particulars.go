package accounting

import (
	"strings"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
)

// ResolveParticulars determines what to show as the particulars for the
// reported ledger on one statement row: the counter side of the voucher.
//
// For the common two-leg voucher this is simply the other leg's ledger name.
// For multi-leg vouchers the distinct counter-ledger names are joined in
// first-seen order, excluding the reported ledger and zero-amount legs. A
// voucher with no nonzero counter leg (a rounding or self-contra entry)
// falls back to the voucher type name.
func ResolveParticulars(v domain.Voucher, reportedLedger string) string {
	seen := make(map[string]struct{}, len(v.Legs))
	var names []string
	for _, leg := range v.Legs {
		if leg.LedgerName == reportedLedger || leg.Amount.IsZero() {
			continue
		}
		if _, ok := seen[leg.LedgerName]; ok {
			continue
		}
		seen[leg.LedgerName] = struct{}{}
		names = append(names, leg.LedgerName)
	}

	if len(names) == 0 {
		return string(v.VoucherType)
	}
	return strings.Join(names, ", ")
}
