package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/dto"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type chargeAccountService struct {
	BaseService
	chargeAccountRepo portsrepo.ChargeAccountRepositoryFacade
}

// NewChargeAccountService creates a charge account service backed by repo.
func NewChargeAccountService(repo portsrepo.ChargeAccountRepositoryFacade) *chargeAccountService {
	return &chargeAccountService{chargeAccountRepo: repo}
}

func (s *chargeAccountService) CreateChargeAccount(ctx context.Context, req dto.CreateChargeAccountRequest, userID string) (*domain.ChargeAccount, error) {
	if err := accounting.ValidateMoney(req.OriginalAmount); err != nil {
		return nil, fmt.Errorf("original amount: %w", err)
	}

	now := time.Now().UTC()
	account := domain.ChargeAccount{
		ChargeAccountID: uuid.NewString(),
		PayerID:         strings.TrimSpace(req.PayerID),
		PayerType:       req.PayerType,
		FeeHead:         strings.TrimSpace(req.FeeHead),
		AcademicYear:    strings.TrimSpace(req.AcademicYear),
		OriginalAmount:  req.OriginalAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.chargeAccountRepo.SaveChargeAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save charge account", slog.String("payer_id", account.PayerID), slog.String("fee_head", account.FeeHead))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Charge account created",
		slog.String("charge_account_id", account.ChargeAccountID),
		slog.String("payer_id", account.PayerID),
		slog.String("fee_head", account.FeeHead))
	return &account, nil
}

func (s *chargeAccountService) GetChargeAccount(ctx context.Context, chargeAccountID string) (*domain.ChargeAccount, error) {
	account, err := s.chargeAccountRepo.FindChargeAccountByID(ctx, chargeAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find charge account", slog.String("charge_account_id", chargeAccountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *chargeAccountService) ListChargeAccountsByPayer(ctx context.Context, payerID string) ([]domain.ChargeAccount, error) {
	accounts, err := s.chargeAccountRepo.ListChargeAccountsByPayer(ctx, payerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list charge accounts", slog.String("payer_id", payerID))
		return nil, fmt.Errorf("failed to list charge accounts: %w", err)
	}
	if accounts == nil {
		return []domain.ChargeAccount{}, nil
	}
	s.LogDebug(ctx, "Charge accounts listed", slog.String("payer_id", payerID), slog.Int("count", len(accounts)))
	return accounts, nil
}
