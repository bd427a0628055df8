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

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCompanyRepository creates a new repository for company master data.
func NewPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{pool: pool}
}

// FindCompanyByID retrieves a single company by its identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, books_from
		FROM companies
		WHERE company_id = $1;
	`
	var company domain.Company
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&company.CompanyID,
		&company.Name,
		&company.BooksFrom,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("company %s: %w", companyID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: query company %s: %v", apperrors.ErrStorage, companyID, err)
	}

	return &company, nil
}
