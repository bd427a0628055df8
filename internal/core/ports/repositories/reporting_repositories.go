package repositories

import (
	"context"

	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
)

// CompanyRepositoryFacade defines read operations for company master data.
type CompanyRepositoryFacade interface {
	// FindCompanyByID retrieves a company. Returns apperrors.ErrNotFound
	// when the company is unknown.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// LedgerRepositoryFacade defines read operations for ledger master data.
type LedgerRepositoryFacade interface {
	// FindLedger retrieves a ledger by name within a company. Returns
	// apperrors.ErrNotFound when the ledger is unknown.
	FindLedger(ctx context.Context, companyID, ledgerName string) (*domain.Ledger, error)

	// ListBillWiseLedgers retrieves the ledgers of a company that maintain
	// bill-wise tracking, in name order.
	ListBillWiseLedgers(ctx context.Context, companyID string) ([]domain.Ledger, error)
}

// VoucherRepositoryFacade defines read operations over the imported voucher
// rows. The store provides a consistent snapshot per call; rows come back
// verbatim as imported, including source-format date text.
type VoucherRepositoryFacade interface {
	// ListRowsByLedger retrieves every leg of every voucher that touches
	// the given ledger (counter legs included, for particulars resolution).
	ListRowsByLedger(ctx context.Context, companyID, ledgerName string) ([]domain.RawVoucherRow, error)

	// ListRowsForLedgers retrieves the legs posted against the named
	// ledgers only (bill allocation does not need counter legs).
	ListRowsForLedgers(ctx context.Context, companyID string, ledgerNames []string) ([]domain.RawVoucherRow, error)
}
