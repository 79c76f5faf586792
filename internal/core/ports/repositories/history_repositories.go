package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
)

// ChargeAccountReader defines read operations for charge accounts.
type ChargeAccountReader interface {
	// FindChargeAccountByID retrieves a charge account. Returns apperrors.ErrNotFound if missing.
	FindChargeAccountByID(ctx context.Context, chargeAccountID string) (*domain.ChargeAccount, error)

	// FindChargeAccountsByIDs retrieves several charge accounts keyed by ID. Missing IDs are skipped.
	FindChargeAccountsByIDs(ctx context.Context, chargeAccountIDs []string) (map[string]domain.ChargeAccount, error)

	// ListChargeAccountsByPayer lists every fee head assigned to a payer.
	ListChargeAccountsByPayer(ctx context.Context, payerID string) ([]domain.ChargeAccount, error)

	// ListChargeAccounts lists charge accounts of one payer type, or all when payerType is empty.
	ListChargeAccounts(ctx context.Context, payerType domain.PayerType) ([]domain.ChargeAccount, error)
}

// ChargeAccountWriter defines write operations for charge accounts.
type ChargeAccountWriter interface {
	// SaveChargeAccount persists a new charge account. Returns apperrors.ErrDuplicate when the
	// payer already has the fee head for the academic year.
	SaveChargeAccount(ctx context.Context, account domain.ChargeAccount) error
}

// ChargeAccountRepositoryFacade combines all charge account operations.
type ChargeAccountRepositoryFacade interface {
	ChargeAccountReader
	ChargeAccountWriter
}

// PaymentEventReader defines read operations for payment history.
type PaymentEventReader interface {
	// ListPaymentEventsByChargeAccount returns the full history of a charge account in chronological order.
	ListPaymentEventsByChargeAccount(ctx context.Context, chargeAccountID string) ([]domain.PaymentEvent, error)

	// ListPaymentEventsByChargeAccounts returns the histories of several charge accounts, keyed by account ID.
	ListPaymentEventsByChargeAccounts(ctx context.Context, chargeAccountIDs []string) (map[string][]domain.PaymentEvent, error)

	// ListPaymentEventsPage returns one page of history using token-based pagination.
	ListPaymentEventsPage(ctx context.Context, chargeAccountID string, limit int, nextToken *string) ([]domain.PaymentEvent, *string, error)

	// ListPaymentEventsBetween returns all events with from <= paid_at < to, chronologically.
	ListPaymentEventsBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentEvent, error)
}

// PaymentEventWriter defines write operations for payment history.
type PaymentEventWriter interface {
	// AppendPaymentEvent stores a new event. Implementations must reject an event that would
	// push the charge account past its original amount, using their own concurrency control.
	AppendPaymentEvent(ctx context.Context, event domain.PaymentEvent) error
}

// PaymentEventRepositoryFacade combines all payment history operations.
//
//go:generate mockgen -destination=mocks/mock_history_repositories.go -package=mock_repositories -source=history_repositories.go
type PaymentEventRepositoryFacade interface {
	PaymentEventReader
	PaymentEventWriter
}
