package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates a report was requested for an impossible date
// range, e.g. from after to, or a reference date before any data exists.
var ErrInvalidRange = errors.New("invalid date range")

// ErrInconsistentData indicates the imported rows violate an accounting
// invariant the engine relies on. Use errors.As with *InconsistentDataError
// to recover the offending identifiers.
var ErrInconsistentData = errors.New("inconsistent accounting data")

// ErrStorage indicates the storage collaborator failed or timed out. The
// engine propagates it as-is; retry policy belongs to the caller.
var ErrStorage = errors.New("storage access failed")

// InconsistencyDetail identifies one entity that violates an accounting
// invariant, with enough context to reproduce the failing request.
type InconsistencyDetail struct {
	VoucherID  string `json:"voucherID,omitempty"`
	BillName   string `json:"billName,omitempty"`
	LedgerName string `json:"ledgerName,omitempty"`
	Reason     string `json:"reason"`
}

func (d InconsistencyDetail) String() string {
	parts := make([]string, 0, 4)
	if d.VoucherID != "" {
		parts = append(parts, "voucher "+d.VoucherID)
	}
	if d.BillName != "" {
		parts = append(parts, "bill "+d.BillName)
	}
	if d.LedgerName != "" {
		parts = append(parts, "ledger "+d.LedgerName)
	}
	parts = append(parts, d.Reason)
	return strings.Join(parts, ": ")
}

// InconsistentDataError reports every detected invariant violation rather
// than silently clamping. The caller decides whether to fail the request or
// proceed with the best-effort result computed alongside it.
type InconsistentDataError struct {
	Details []InconsistencyDetail
}

func (e *InconsistentDataError) Error() string {
	if len(e.Details) == 1 {
		return fmt.Sprintf("%s: %s", ErrInconsistentData, e.Details[0])
	}
	return fmt.Sprintf("%s: %d violations, first: %s", ErrInconsistentData, len(e.Details), e.Details[0])
}

// Unwrap allows errors.Is(err, ErrInconsistentData) to match.
func (e *InconsistentDataError) Unwrap() error {
	return ErrInconsistentData
}
