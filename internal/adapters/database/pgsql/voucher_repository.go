package pgsql

import (
	"context"
	"fmt"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	pool *pgxpool.Pool
}

// NewPgxVoucherRepository creates a new repository over the imported voucher
// rows. This is a pure-read store; the importer owns all writes.
func NewPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{pool: pool}
}

const voucherRowColumns = `
	voucher_id, date, voucher_type, voucher_number, voucher_seq,
	ledger_name, amount, bill_reference, bill_type, bill_date,
	due_date, credit_period_days, narration
`

// ListRowsByLedger retrieves every leg of every voucher that touches the
// given ledger. Counter legs are included so particulars can be resolved.
// Range filtering happens after date normalization, not here: the imported
// date column is source-format text.
func (r *PgxVoucherRepository) ListRowsByLedger(ctx context.Context, companyID, ledgerName string) ([]domain.RawVoucherRow, error) {
	query := `
		SELECT ` + voucherRowColumns + `
		FROM voucher_rows
		WHERE company_id = $1
			AND voucher_id IN (
				SELECT voucher_id FROM voucher_rows
				WHERE company_id = $1 AND ledger_name = $2
			)
		ORDER BY voucher_seq, row_id;
	`
	rows, err := r.pool.Query(ctx, query, companyID, ledgerName)
	if err != nil {
		return nil, fmt.Errorf("%w: query voucher rows for ledger %s: %v", apperrors.ErrStorage, ledgerName, err)
	}
	defer rows.Close()

	return scanVoucherRows(rows)
}

// ListRowsForLedgers retrieves the legs posted against the named ledgers only.
func (r *PgxVoucherRepository) ListRowsForLedgers(ctx context.Context, companyID string, ledgerNames []string) ([]domain.RawVoucherRow, error) {
	query := `
		SELECT ` + voucherRowColumns + `
		FROM voucher_rows
		WHERE company_id = $1 AND ledger_name = ANY($2)
		ORDER BY voucher_seq, row_id;
	`
	rows, err := r.pool.Query(ctx, query, companyID, ledgerNames)
	if err != nil {
		return nil, fmt.Errorf("%w: query voucher rows for %d ledgers: %v", apperrors.ErrStorage, len(ledgerNames), err)
	}
	defer rows.Close()

	return scanVoucherRows(rows)
}

func scanVoucherRows(rows pgx.Rows) ([]domain.RawVoucherRow, error) {
	result := []domain.RawVoucherRow{}
	for rows.Next() {
		var row domain.RawVoucherRow
		if err := rows.Scan(
			&row.VoucherID,
			&row.Date,
			&row.VoucherType,
			&row.VoucherNumber,
			&row.VoucherSeq,
			&row.LedgerName,
			&row.Amount,
			&row.BillReference,
			&row.BillType,
			&row.BillDate,
			&row.DueDate,
			&row.CreditPeriodDays,
			&row.Narration,
		); err != nil {
			return nil, fmt.Errorf("%w: scan voucher row: %v", apperrors.ErrStorage, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate voucher rows: %v", apperrors.ErrStorage, err)
	}

	return result, nil
}
