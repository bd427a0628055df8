package domain

import "time"

// Company represents one set of books imported from the upstream accounting
// package. All ledgers and vouchers are scoped to a company.
type Company struct {
	CompanyID string    `json:"companyID"` // Primary Key (e.g., UUID)
	Name      string    `json:"name"`      // Display name as configured upstream
	BooksFrom time.Time `json:"booksFrom"` // Date the books begin; opening balances are as of this date
}
