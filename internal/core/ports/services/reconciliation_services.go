package services

import (
	"context"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceSvc computes the reconciled state of a charge account.
type BalanceSvc interface {
	// GetBalance reconciles a charge account against a snapshot of its history.
	GetBalance(ctx context.Context, chargeAccountID string) (*domain.ReconciliationResult, error)

	// GetStatement returns the ledger of a charge account with running balances.
	GetStatement(ctx context.Context, chargeAccountID string) (*domain.Statement, error)
}

// PaymentSvc validates and records payments.
type PaymentSvc interface {
	// PreviewPayment validates a proposal and returns the state the account would reach.
	PreviewPayment(ctx context.Context, chargeAccountID string, proposal domain.PaymentProposal) (*domain.ReconciliationResult, error)

	// RecordPayment validates a proposal and appends it to the history.
	RecordPayment(ctx context.Context, chargeAccountID string, req dto.RecordPaymentRequest, userID string) (*domain.PaymentEvent, *domain.ReconciliationResult, error)

	// ListPayments returns one page of the payment history.
	ListPayments(ctx context.Context, chargeAccountID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// DiscountSvc computes settlement discounts.
type DiscountSvc interface {
	QuoteDiscount(ctx context.Context, settlementAmount, discountPercent decimal.Decimal) (*domain.DiscountResult, error)
}

// ReconciliationSvcFacade combines all reconciliation service interfaces
type ReconciliationSvcFacade interface {
	BalanceSvc
	PaymentSvc
	DiscountSvc
}
