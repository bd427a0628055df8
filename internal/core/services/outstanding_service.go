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
	"github.com/LedgerLens/ledger_reports_app/internal/core/services/allocation"
	"github.com/LedgerLens/ledger_reports_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// outstandingService implements the OutstandingSvc interface
type outstandingService struct {
	BaseService
	loader   *voucherLoader
	strategy allocation.Strategy
}

// OutstandingServiceOption is a functional option for configuring the outstanding service
type OutstandingServiceOption func(*outstandingService)

// WithAllocationStrategy overrides the policy used to match settlements
// against bills. Defaults to FIFO.
func WithAllocationStrategy(strategy allocation.Strategy) OutstandingServiceOption {
	return func(s *outstandingService) {
		s.strategy = strategy
	}
}

// NewOutstandingService creates a new outstanding report service with the provided options
func NewOutstandingService(repos *portsrepo.RepositoryProvider, options ...OutstandingServiceOption) portssvc.OutstandingSvc {
	svc := &outstandingService{
		loader:   newVoucherLoader(repos),
		strategy: allocation.NewFIFO(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure outstandingService implements the OutstandingSvc interface
var _ portssvc.OutstandingSvc = (*outstandingService)(nil)

// ledgerWorkset collects one ledger's allocation inputs while walking the
// voucher stream in chronological order.
type ledgerWorkset struct {
	ledger      domain.Ledger
	bills       []*domain.Bill
	settlements []allocation.Settlement
}

// GetOutstanding computes the bill-wise outstanding/ageing schedule as of
// the reference date.
func (s *outstandingService) GetOutstanding(ctx context.Context, companyID string, reportType domain.ReportType, asOn time.Time) (*domain.OutstandingReport, error) {
	company, err := s.loader.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve company for outstanding report",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("find company %s: %w", companyID, err)
	}
	if asOn.Before(company.BooksFrom) {
		return nil, fmt.Errorf("%w: as-on date %s is before the books begin (%s)", apperrors.ErrInvalidRange,
			asOn.Format("2006-01-02"), company.BooksFrom.Format("2006-01-02"))
	}

	ledgers, err := s.loader.ledgerRepo.ListBillWiseLedgers(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bill-wise ledgers",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("list bill-wise ledgers for company %s: %w", companyID, err)
	}

	report := &domain.OutstandingReport{
		CompanyName:      company.Name,
		ReportType:       reportType,
		AsOn:             asOn,
		Rows:             []domain.OutstandingRow{},
		OnAccount:        []domain.OnAccountBalance{},
		LedgerSummaries:  []domain.LedgerOutstandingSummary{},
		TotalReceivables: decimal.Zero,
		TotalPayables:    decimal.Zero,
	}
	if len(ledgers) == 0 {
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ledgerNames := make([]string, len(ledgers))
	ledgerByName := make(map[string]domain.Ledger, len(ledgers))
	for i, l := range ledgers {
		ledgerNames[i] = l.Name
		ledgerByName[l.Name] = l
	}

	vouchers, err := s.loader.loadVouchersForLedgers(ctx, companyID, ledgerNames)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vouchers for outstanding report",
			slog.String("company_id", companyID))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	worksets, order := partitionLegs(vouchers, ledgerByName, asOn)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var inconsistencies []apperrors.InconsistencyDetail
	for _, name := range order {
		ws := worksets[name]
		result, err := s.strategy.Allocate(ctx, ws.bills, ws.settlements)
		if err != nil {
			return nil, err
		}
		inconsistencies = append(inconsistencies, result.Inconsistencies...)
		s.appendLedgerResult(report, ws.ledger, result, reportType, asOn)
	}

	for _, row := range report.Rows {
		if row.IsReceivable {
			report.TotalReceivables = report.TotalReceivables.Add(row.Outstanding)
		} else {
			report.TotalPayables = report.TotalPayables.Add(row.Outstanding)
		}
	}

	s.LogInfo(ctx, "Outstanding report generated",
		slog.String("company_id", companyID),
		slog.String("report_type", string(reportType)),
		slog.String("as_on", asOn.Format("2006-01-02")),
		slog.Int("row_count", len(report.Rows)),
		slog.Int("ledger_count", len(report.LedgerSummaries)))

	if len(inconsistencies) > 0 {
		// Best-effort contract: the report is returned alongside the error
		// so the caller owns the fail-or-proceed decision.
		return report, &apperrors.InconsistentDataError{Details: inconsistencies}
	}
	return report, nil
}

// partitionLegs walks the chronologically ordered voucher stream and splits
// each bill-wise ledger's legs (up to the as-on date) into originating bills
// and settlements. Ledger order is the order of first encounter, which is
// deterministic because the voucher order is.
func partitionLegs(vouchers []domain.Voucher, ledgerByName map[string]domain.Ledger, asOn time.Time) (map[string]*ledgerWorkset, []string) {
	worksets := make(map[string]*ledgerWorkset)
	var order []string

	for _, v := range vouchers {
		if v.Date.After(asOn) {
			continue
		}
		for _, leg := range v.Legs {
			ledger, tracked := ledgerByName[leg.LedgerName]
			if !tracked || leg.Amount.IsZero() {
				continue
			}
			ws, ok := worksets[leg.LedgerName]
			if !ok {
				ws = &ledgerWorkset{ledger: ledger}
				worksets[leg.LedgerName] = ws
				order = append(order, leg.LedgerName)
			}

			if leg.BillRef != nil && leg.BillRef.Type.Originating() {
				billDate := v.Date
				if leg.BillRef.BillDate != nil {
					billDate = *leg.BillRef.BillDate
				}
				ws.bills = append(ws.bills, &domain.Bill{
					LedgerName:       leg.LedgerName,
					Name:             leg.BillRef.Name,
					Type:             leg.BillRef.Type,
					BillDate:         billDate,
					DueDate:          leg.BillRef.DueDate,
					CreditPeriodDays: leg.BillRef.CreditPeriodDays,
					OriginalAmount:   leg.Amount,
					VoucherType:      v.VoucherType,
					VoucherNumber:    v.VoucherNumber,
					Seq:              len(ws.bills),
				})
				continue
			}

			settlement := allocation.Settlement{
				LedgerName:    leg.LedgerName,
				Amount:        leg.Amount,
				Date:          v.Date,
				VoucherID:     v.VoucherID,
				VoucherType:   v.VoucherType,
				VoucherNumber: v.VoucherNumber,
			}
			if leg.BillRef != nil && leg.BillRef.Type == domain.BillAgainstRef {
				settlement.BillName = leg.BillRef.Name
			}
			ws.settlements = append(ws.settlements, settlement)
		}
	}

	return worksets, order
}

// appendLedgerResult turns one ledger's allocation result into report rows,
// its on-account balance, and its subtotal line. Rows stay in bill-date
// order (the FIFO queue order).
func (s *outstandingService) appendLedgerResult(report *domain.OutstandingReport, ledger domain.Ledger, result allocation.Result, reportType domain.ReportType, asOn time.Time) {
	summary := domain.LedgerOutstandingSummary{
		LedgerName:      ledger.Name,
		ReceivableTotal: decimal.Zero,
		PayableTotal:    decimal.Zero,
	}

	for _, bill := range result.Bills {
		remaining := bill.RemainingSigned()
		if remaining.IsZero() {
			continue
		}
		row := domain.OutstandingRow{
			LedgerName:    ledger.Name,
			BillName:      bill.Name,
			BillDate:      bill.BillDate,
			BillType:      bill.Type,
			VoucherType:   bill.VoucherType,
			VoucherNumber: bill.VoucherNumber,
			Outstanding:   remaining.Abs(),
			Balance:       remaining,
			IsReceivable:  remaining.IsPositive(),
			DueDate:       bill.EffectiveDueDate(ledger.CreditPeriodDays),
		}
		if overdue := dates.DaysBetween(row.DueDate, asOn); overdue > 0 {
			row.OverdueDays = overdue
		}
		row.Bucket = domain.BucketFor(row.OverdueDays)

		if !rowMatches(row, reportType) {
			continue
		}
		report.Rows = append(report.Rows, row)
		summary.BillCount++
		if row.IsReceivable {
			summary.ReceivableTotal = summary.ReceivableTotal.Add(row.Outstanding)
		} else {
			summary.PayableTotal = summary.PayableTotal.Add(row.Outstanding)
		}
	}

	if !result.OnAccount.IsZero() {
		report.OnAccount = append(report.OnAccount, domain.OnAccountBalance{
			LedgerName:   ledger.Name,
			Amount:       result.OnAccount.Abs(),
			IsReceivable: result.OnAccount.IsPositive(),
		})
	}

	if summary.BillCount > 0 {
		report.LedgerSummaries = append(report.LedgerSummaries, summary)
	}
}

func rowMatches(row domain.OutstandingRow, reportType domain.ReportType) bool {
	switch reportType {
	case domain.ReportReceivables:
		return row.IsReceivable
	case domain.ReportPayables:
		return !row.IsReceivable
	default:
		return true
	}
}
