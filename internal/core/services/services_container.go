package services

import (
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/school_fee_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ChargeAccount:  NewChargeAccountService(repos.ChargeAccountRepo),
		Reconciliation: NewReconciliationService(repos.ChargeAccountRepo, repos.PaymentEventRepo),
		Reporting:      NewReportingService(repos.ChargeAccountRepo, repos.PaymentEventRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChargeAccountSvcFacade  = (*chargeAccountService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.ReportingSvc            = (*reportingService)(nil)
)
