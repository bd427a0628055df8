package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	"github.com/LedgerLens/ledger_reports_app/internal/utils/dates"
)

// voucherLoader fetches raw imported rows from the storage collaborator and
// normalizes them into domain vouchers: heterogeneous source date text
// becomes canonical calendar dates, and leg rows are grouped by voucher.
type voucherLoader struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	voucherRepo portsrepo.VoucherRepositoryFacade
}

func newVoucherLoader(repos *portsrepo.RepositoryProvider) *voucherLoader {
	return &voucherLoader{
		companyRepo: repos.CompanyRepo,
		ledgerRepo:  repos.LedgerRepo,
		voucherRepo: repos.VoucherRepo,
	}
}

// loadLedgerContext resolves the company and ledger master data for a
// report request. Unknown identifiers surface as apperrors.ErrNotFound.
func (l *voucherLoader) loadLedgerContext(ctx context.Context, companyID, ledgerName string) (*domain.Company, *domain.Ledger, error) {
	company, err := l.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("find company %s: %w", companyID, err)
	}
	ledger, err := l.ledgerRepo.FindLedger(ctx, companyID, ledgerName)
	if err != nil {
		return nil, nil, fmt.Errorf("find ledger %s in company %s: %w", ledgerName, companyID, err)
	}
	return company, ledger, nil
}

// loadLedgerVouchers fetches every voucher touching the given ledger and
// normalizes it. The full history is returned; callers split it around the
// requested period to derive the opening balance.
func (l *voucherLoader) loadLedgerVouchers(ctx context.Context, companyID, ledgerName string) ([]domain.Voucher, error) {
	rows, err := l.voucherRepo.ListRowsByLedger(ctx, companyID, ledgerName)
	if err != nil {
		return nil, fmt.Errorf("list voucher rows for ledger %s: %w", ledgerName, err)
	}
	return buildVouchers(companyID, rows)
}

// loadVouchersForLedgers fetches the legs posted against the named ledgers
// and normalizes them, for bill allocation.
func (l *voucherLoader) loadVouchersForLedgers(ctx context.Context, companyID string, ledgerNames []string) ([]domain.Voucher, error) {
	rows, err := l.voucherRepo.ListRowsForLedgers(ctx, companyID, ledgerNames)
	if err != nil {
		return nil, fmt.Errorf("list voucher rows for %d ledgers: %w", len(ledgerNames), err)
	}
	return buildVouchers(companyID, rows)
}

// buildVouchers groups raw leg rows by voucher identifier, normalizing date
// text and bill references along the way. Voucher order is chronological
// with the upstream ordering id as the stable tie-break, so downstream
// computations are deterministic across requests.
func buildVouchers(companyID string, rows []domain.RawVoucherRow) ([]domain.Voucher, error) {
	byID := make(map[string]*domain.Voucher, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		v, ok := byID[row.VoucherID]
		if !ok {
			date, err := dates.ParseSourceDate(row.Date)
			if err != nil {
				return nil, &apperrors.InconsistentDataError{Details: []apperrors.InconsistencyDetail{{
					VoucherID: row.VoucherID,
					Reason:    fmt.Sprintf("unparseable voucher date %q", row.Date),
				}}}
			}
			v = &domain.Voucher{
				VoucherID:     row.VoucherID,
				CompanyID:     companyID,
				Date:          date,
				VoucherType:   domain.VoucherType(row.VoucherType),
				VoucherNumber: row.VoucherNumber,
				SortKey:       row.VoucherSeq,
			}
			if row.Narration != nil {
				v.Narration = *row.Narration
			}
			byID[row.VoucherID] = v
			order = append(order, row.VoucherID)
		}

		leg := domain.Leg{LedgerName: row.LedgerName, Amount: row.Amount}
		if row.BillReference != nil && *row.BillReference != "" {
			ref, err := buildBillRef(row)
			if err != nil {
				return nil, err
			}
			leg.BillRef = ref
		}
		v.Legs = append(v.Legs, leg)
	}

	vouchers := make([]domain.Voucher, 0, len(order))
	for _, id := range order {
		vouchers = append(vouchers, *byID[id])
	}
	sort.SliceStable(vouchers, func(i, j int) bool {
		if !vouchers[i].Date.Equal(vouchers[j].Date) {
			return vouchers[i].Date.Before(vouchers[j].Date)
		}
		return vouchers[i].SortKey < vouchers[j].SortKey
	})
	return vouchers, nil
}

func buildBillRef(row domain.RawVoucherRow) (*domain.BillRef, error) {
	ref := &domain.BillRef{
		Name:             *row.BillReference,
		Type:             domain.BillAgainstRef, // Settlement unless the row says otherwise
		CreditPeriodDays: row.CreditPeriodDays,
	}
	if row.BillType != nil {
		ref.Type = domain.BillRefType(*row.BillType)
	}
	if row.BillDate != nil && *row.BillDate != "" {
		d, err := dates.ParseSourceDate(*row.BillDate)
		if err != nil {
			return nil, &apperrors.InconsistentDataError{Details: []apperrors.InconsistencyDetail{{
				VoucherID: row.VoucherID,
				BillName:  ref.Name,
				Reason:    fmt.Sprintf("unparseable bill date %q", *row.BillDate),
			}}}
		}
		ref.BillDate = &d
	}
	if row.DueDate != nil && *row.DueDate != "" {
		d, err := dates.ParseSourceDate(*row.DueDate)
		if err != nil {
			return nil, &apperrors.InconsistentDataError{Details: []apperrors.InconsistencyDetail{{
				VoucherID: row.VoucherID,
				BillName:  ref.Name,
				Reason:    fmt.Sprintf("unparseable due date %q", *row.DueDate),
			}}}
		}
		ref.DueDate = &d
	}
	return ref, nil
}
