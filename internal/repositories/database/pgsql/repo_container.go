package pgsql

import (
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL history store.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChargeAccountRepo: newPgxChargeAccountRepository(dbPool),
		PaymentEventRepo:  newPgxPaymentEventRepository(dbPool),
	}
}
