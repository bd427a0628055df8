package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	portssvc "github.com/LedgerLens/ledger_reports_app/internal/core/ports/services"
	"github.com/LedgerLens/ledger_reports_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerStatementService implements the LedgerStatementSvc interface
type ledgerStatementService struct {
	BaseService
	loader           *voucherLoader
	validateVouchers bool
}

// LedgerStatementServiceOption is a functional option for configuring the statement service
type LedgerStatementServiceOption func(*ledgerStatementService)

// WithVoucherBalanceValidation toggles checking that each voucher's legs sum
// to zero before it is folded into the statement. The engine trusts the
// upstream posting by default.
func WithVoucherBalanceValidation(enabled bool) LedgerStatementServiceOption {
	return func(s *ledgerStatementService) {
		s.validateVouchers = enabled
	}
}

// NewLedgerStatementService creates a new ledger statement service with the provided options
func NewLedgerStatementService(repos *portsrepo.RepositoryProvider, options ...LedgerStatementServiceOption) portssvc.LedgerStatementSvc {
	svc := &ledgerStatementService{
		loader: newVoucherLoader(repos),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerStatementService implements the LedgerStatementSvc interface
var _ portssvc.LedgerStatementSvc = (*ledgerStatementService)(nil)

// GetLedgerStatement computes the running-balance statement for one ledger
// over [from, to]. The computation is a pure function of the stored rows:
// rows fold in (date, upstream ordering id) order, so recomputing the same
// request yields identical output.
func (s *ledgerStatementService) GetLedgerStatement(ctx context.Context, companyID, ledgerName string, from, to time.Time) (*domain.LedgerStatement, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", apperrors.ErrInvalidRange,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	company, ledger, err := s.loader.loadLedgerContext(ctx, companyID, ledgerName)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve ledger for statement",
			slog.String("company_id", companyID),
			slog.String("ledger", ledgerName))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vouchers, err := s.loader.loadLedgerVouchers(ctx, companyID, ledgerName)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vouchers for statement",
			slog.String("company_id", companyID),
			slog.String("ledger", ledgerName))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var inconsistencies []apperrors.InconsistencyDetail
	if s.validateVouchers {
		for _, v := range vouchers {
			if !v.IsBalanced() {
				inconsistencies = append(inconsistencies, apperrors.InconsistencyDetail{
					VoucherID:  v.VoucherID,
					LedgerName: ledgerName,
					Reason:     "voucher legs do not sum to zero",
				})
			}
		}
	}

	statement := s.fold(ledger, company, vouchers, from, to)

	s.LogInfo(ctx, "Ledger statement generated",
		slog.String("company_id", companyID),
		slog.String("ledger", ledgerName),
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.Int("row_count", len(statement.Rows)))

	if len(inconsistencies) > 0 {
		// Best-effort contract: the statement is returned alongside the
		// error so the caller owns the fail-or-proceed decision.
		return statement, &apperrors.InconsistentDataError{Details: inconsistencies}
	}
	return statement, nil
}

// fold runs the running balance calculation: opening balance as of the
// period start, then one row per voucher in chronological order with the
// upstream ordering id as the stable tie-break.
func (s *ledgerStatementService) fold(ledger *domain.Ledger, company *domain.Company, vouchers []domain.Voucher, from, to time.Time) *domain.LedgerStatement {
	opening := ledger.OpeningBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	rows := make([]domain.LedgerStatementRow, 0, len(vouchers))

	// Vouchers arrive sorted from the loader; split around the period.
	for _, v := range vouchers {
		legs := v.LegsFor(ledger.Name)
		if len(legs) == 0 {
			continue
		}
		if v.Date.Before(from) {
			opening = opening.Add(accounting.SignedTotal(legs))
			continue
		}
		if v.Date.After(to) {
			continue
		}

		debit, credit := accounting.NetDebitCredit(legs)
		if debit.IsZero() && credit.IsZero() {
			continue
		}
		rows = append(rows, domain.LedgerStatementRow{
			Date:          v.Date,
			Particulars:   accounting.ResolveParticulars(v, ledger.Name),
			VoucherType:   v.VoucherType,
			VoucherNumber: v.VoucherNumber,
			Debit:         debit,
			Credit:        credit,
		})
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)
	}

	running := opening
	for i := range rows {
		running = running.Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].Balance = running
	}

	return &domain.LedgerStatement{
		CompanyName:    company.Name,
		LedgerName:     ledger.Name,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: opening.Add(totalDebit).Sub(totalCredit),
		Rows:           rows,
	}
}
