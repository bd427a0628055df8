package services

import (
	"context"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
)

// LedgerStatementSvc generates per-account running-balance statements.
type LedgerStatementSvc interface {
	// GetLedgerStatement computes the statement for a ledger over
	// [from, to]. When the imported rows violate an accounting invariant
	// the computed statement is returned together with a
	// *apperrors.InconsistentDataError so the caller can choose between
	// failing the request and using the best-effort result.
	GetLedgerStatement(ctx context.Context, companyID, ledgerName string, from, to time.Time) (*domain.LedgerStatement, error)
}

// OutstandingSvc generates bill-wise outstanding/ageing schedules.
type OutstandingSvc interface {
	// GetOutstanding computes the outstanding report as of a reference
	// date. The same best-effort contract as GetLedgerStatement applies
	// to *apperrors.InconsistentDataError.
	GetOutstanding(ctx context.Context, companyID string, reportType domain.ReportType, asOn time.Time) (*domain.OutstandingReport, error)
}
