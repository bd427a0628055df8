package pgsql

import (
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CompanyRepo: NewPgxCompanyRepository(pool),
		LedgerRepo:  NewPgxLedgerRepository(pool),
		VoucherRepo: NewPgxVoucherRepository(pool),
	}
}
