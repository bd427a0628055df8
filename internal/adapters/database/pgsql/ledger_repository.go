package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for ledger master data.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// FindLedger retrieves a ledger by name within a company.
func (r *PgxLedgerRepository) FindLedger(ctx context.Context, companyID, ledgerName string) (*domain.Ledger, error) {
	query := `
		SELECT name, company_id, nature, opening_balance, credit_period_days, bill_wise
		FROM ledgers
		WHERE company_id = $1 AND name = $2;
	`
	var ledger domain.Ledger
	var nature string
	err := r.pool.QueryRow(ctx, query, companyID, ledgerName).Scan(
		&ledger.Name,
		&ledger.CompanyID,
		&nature,
		&ledger.OpeningBalance,
		&ledger.CreditPeriodDays,
		&ledger.BillWise,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger %s in company %s: %w", ledgerName, companyID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: query ledger %s: %v", apperrors.ErrStorage, ledgerName, err)
	}
	ledger.Nature = domain.LedgerNature(nature)

	return &ledger, nil
}

// ListBillWiseLedgers retrieves the ledgers of a company that maintain
// bill-wise tracking, in name order.
func (r *PgxLedgerRepository) ListBillWiseLedgers(ctx context.Context, companyID string) ([]domain.Ledger, error) {
	query := `
		SELECT name, company_id, nature, opening_balance, credit_period_days, bill_wise
		FROM ledgers
		WHERE company_id = $1 AND bill_wise = TRUE
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: query bill-wise ledgers for company %s: %v", apperrors.ErrStorage, companyID, err)
	}
	defer rows.Close()

	ledgers := []domain.Ledger{}
	for rows.Next() {
		var ledger domain.Ledger
		var nature string
		if err := rows.Scan(
			&ledger.Name,
			&ledger.CompanyID,
			&nature,
			&ledger.OpeningBalance,
			&ledger.CreditPeriodDays,
			&ledger.BillWise,
		); err != nil {
			return nil, fmt.Errorf("%w: scan ledger row: %v", apperrors.ErrStorage, err)
		}
		ledger.Nature = domain.LedgerNature(nature)
		ledgers = append(ledgers, ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate ledger rows: %v", apperrors.ErrStorage, err)
	}

	return ledgers, nil
}
