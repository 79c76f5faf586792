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
	"github.com/SscSPs/school_fee_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsPageSize = 20
	maxPaymentsPageSize     = 100
)

type reconciliationService struct {
	BaseService
	chargeAccountRepo portsrepo.ChargeAccountReader
	paymentEventRepo  portsrepo.PaymentEventRepositoryFacade
	now               func() time.Time
}

// ReconciliationServiceOption configures a reconciliation service.
type ReconciliationServiceOption func(*reconciliationService)

// WithClock overrides the clock used to stamp payments.
func WithClock(now func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates a reconciliation service over the given history store.
func NewReconciliationService(
	chargeAccountRepo portsrepo.ChargeAccountReader,
	paymentEventRepo portsrepo.PaymentEventRepositoryFacade,
	opts ...ReconciliationServiceOption,
) *reconciliationService {
	s := &reconciliationService{
		chargeAccountRepo: chargeAccountRepo,
		paymentEventRepo:  paymentEventRepo,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot is one consistent read of a charge account and its history.
type snapshot struct {
	account *domain.ChargeAccount
	history []domain.PaymentEvent
	result  domain.ReconciliationResult
}

func (s *reconciliationService) loadSnapshot(ctx context.Context, chargeAccountID string) (*snapshot, error) {
	account, err := s.chargeAccountRepo.FindChargeAccountByID(ctx, chargeAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load charge account", slog.String("charge_account_id", chargeAccountID))
		}
		return nil, err
	}

	history, err := s.paymentEventRepo.ListPaymentEventsByChargeAccount(ctx, chargeAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment history", slog.String("charge_account_id", chargeAccountID))
		return nil, err
	}

	result, err := accounting.ComputeBalance(account.OriginalAmount, history)
	if err != nil {
		// A stored negative original amount is corrupt data, not user input.
		s.LogError(ctx, err, "Charge account cannot be reconciled", slog.String("charge_account_id", chargeAccountID))
		return nil, fmt.Errorf("%w: charge account %s: %v", apperrors.ErrInternal, chargeAccountID, err)
	}
	s.warnIfOverapplied(ctx, chargeAccountID, &result)

	return &snapshot{account: account, history: history, result: result}, nil
}

func (s *reconciliationService) GetBalance(ctx context.Context, chargeAccountID string) (*domain.ReconciliationResult, error) {
	snap, err := s.loadSnapshot(ctx, chargeAccountID)
	if err != nil {
		return nil, err
	}
	return &snap.result, nil
}

func (s *reconciliationService) GetStatement(ctx context.Context, chargeAccountID string) (*domain.Statement, error) {
	snap, err := s.loadSnapshot(ctx, chargeAccountID)
	if err != nil {
		return nil, err
	}
	return &domain.Statement{
		Account: *snap.account,
		Lines:   accounting.BuildStatementLines(snap.account.OriginalAmount, snap.history),
		Result:  snap.result,
	}, nil
}

// validateProposal applies the money rules and the balance rule to a proposal.
func validateProposal(remaining decimal.Decimal, proposal domain.PaymentProposal) error {
	if err := accounting.ValidateMoney(proposal.PaidAmount); err != nil {
		return fmt.Errorf("paid amount: %w", err)
	}
	if err := accounting.ValidateMoney(proposal.ConcessionAmount); err != nil {
		return fmt.Errorf("concession amount: %w", err)
	}
	return accounting.ValidateProposedEvent(remaining, proposal.PaidAmount, proposal.ConcessionAmount)
}

// projectedResult reconciles the history as if event had already been appended.
func projectedResult(snap *snapshot, event domain.PaymentEvent) (domain.ReconciliationResult, error) {
	history := make([]domain.PaymentEvent, 0, len(snap.history)+1)
	history = append(history, snap.history...)
	history = append(history, event)
	return accounting.ComputeBalance(snap.account.OriginalAmount, history)
}

func (s *reconciliationService) PreviewPayment(ctx context.Context, chargeAccountID string, proposal domain.PaymentProposal) (*domain.ReconciliationResult, error) {
	snap, err := s.loadSnapshot(ctx, chargeAccountID)
	if err != nil {
		return nil, err
	}
	if err := validateProposal(snap.result.RemainingBalance, proposal); err != nil {
		s.LogDebug(ctx, "Payment preview rejected", slog.String("charge_account_id", chargeAccountID), slog.String("reason", err.Error()))
		return nil, err
	}

	result, err := projectedResult(snap, domain.PaymentEvent{
		PaidAmount:       proposal.PaidAmount,
		ConcessionAmount: proposal.ConcessionAmount,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *reconciliationService) RecordPayment(ctx context.Context, chargeAccountID string, req dto.RecordPaymentRequest, userID string) (*domain.PaymentEvent, *domain.ReconciliationResult, error) {
	snap, err := s.loadSnapshot(ctx, chargeAccountID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateProposal(snap.result.RemainingBalance, req.ToDomain()); err != nil {
		s.LogInfo(ctx, "Payment rejected",
			slog.String("charge_account_id", chargeAccountID),
			slog.String("remaining_balance", snap.result.RemainingBalance.String()),
			slog.String("reason", err.Error()))
		return nil, nil, err
	}

	now := s.now().UTC()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = req.PaidAt.UTC()
	}
	mode := req.PaymentMode
	if mode == "" {
		mode = domain.PaymentCash
	}

	event := domain.PaymentEvent{
		PaymentEventID:   uuid.NewString(),
		ChargeAccountID:  chargeAccountID,
		PaidAmount:       req.PaidAmount,
		ConcessionAmount: req.ConcessionAmount,
		PaidAt:           paidAt,
		ReferenceNo:      strings.TrimSpace(req.ReferenceNo),
		PaymentMode:      mode,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentEventRepo.AppendPaymentEvent(ctx, event); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
			// The store saw a newer history than our snapshot.
			s.LogInfo(ctx, "Payment rejected by history store", slog.String("charge_account_id", chargeAccountID), slog.String("reason", err.Error()))
			return nil, nil, err
		case errors.Is(err, apperrors.ErrRemote), errors.Is(err, apperrors.ErrDuplicate):
			s.LogError(ctx, err, "Failed to append payment event", slog.String("charge_account_id", chargeAccountID))
			return nil, nil, err
		default:
			s.LogError(ctx, err, "Failed to append payment event", slog.String("charge_account_id", chargeAccountID))
			return nil, nil, apperrors.NewRemoteError("failed to record payment", err)
		}
	}

	result, err := projectedResult(snap, event)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("charge_account_id", chargeAccountID),
		slog.String("payment_event_id", event.PaymentEventID),
		slog.String("paid_amount", event.PaidAmount.String()),
		slog.String("concession_amount", event.ConcessionAmount.String()),
		slog.String("remaining_balance", result.RemainingBalance.String()))
	return &event, &result, nil
}

func (s *reconciliationService) ListPayments(ctx context.Context, chargeAccountID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.chargeAccountRepo.FindChargeAccountByID(ctx, chargeAccountID); err != nil {
		return nil, err
	}

	limit := pagination.ClampLimit(params.Limit, defaultPaymentsPageSize, maxPaymentsPageSize)
	events, nextToken, err := s.paymentEventRepo.ListPaymentEventsPage(ctx, chargeAccountID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("charge_account_id", chargeAccountID))
		return nil, err
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentEventResponses(events),
		NextToken: nextToken,
	}, nil
}

func (s *reconciliationService) QuoteDiscount(ctx context.Context, settlementAmount, discountPercent decimal.Decimal) (*domain.DiscountResult, error) {
	if err := accounting.ValidateMoney(settlementAmount); err != nil {
		return nil, fmt.Errorf("settlement amount: %w", err)
	}
	result, err := accounting.ApplyDiscount(settlementAmount, discountPercent)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Discount quoted",
		slog.String("settlement_amount", settlementAmount.String()),
		slog.String("discount_percent", discountPercent.String()),
		slog.String("discount_amount", result.DiscountAmount.String()))
	return &result, nil
}
