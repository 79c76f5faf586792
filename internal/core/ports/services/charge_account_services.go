package services

import (
	"context"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/dto"
)

// ChargeAccountReaderSvc defines read operations for charge accounts
type ChargeAccountReaderSvc interface {
	// GetChargeAccount retrieves a charge account by its ID.
	GetChargeAccount(ctx context.Context, chargeAccountID string) (*domain.ChargeAccount, error)

	// ListChargeAccountsByPayer lists the fee heads assigned to a payer.
	ListChargeAccountsByPayer(ctx context.Context, payerID string) ([]domain.ChargeAccount, error)
}

// ChargeAccountWriterSvc defines write operations for charge accounts
type ChargeAccountWriterSvc interface {
	// CreateChargeAccount assigns a fee head to a payer.
	CreateChargeAccount(ctx context.Context, req dto.CreateChargeAccountRequest, userID string) (*domain.ChargeAccount, error)
}

// ChargeAccountSvcFacade combines all charge account service interfaces
type ChargeAccountSvcFacade interface {
	ChargeAccountReaderSvc
	ChargeAccountWriterSvc
}
