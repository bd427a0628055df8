package services

import (
	portsrepo "github.com/LedgerLens/ledger_reports_app/internal/core/ports/repositories"
	portssvc "github.com/LedgerLens/ledger_reports_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies. Options apply to the individual services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, statementOpts []LedgerStatementServiceOption, outstandingOpts []OutstandingServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		LedgerStatement: NewLedgerStatementService(repos, statementOpts...),
		Outstanding:     NewOutstandingService(repos, outstandingOpts...),
	}
}
