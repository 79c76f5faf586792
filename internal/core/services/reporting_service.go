package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// UnknownFeeHead groups collections whose charge account could not be resolved.
const UnknownFeeHead = "UNKNOWN"

type reportingService struct {
	BaseService
	chargeAccountRepo portsrepo.ChargeAccountReader
	paymentEventRepo  portsrepo.PaymentEventReader
}

// NewReportingService creates a new reporting service
func NewReportingService(chargeAccountRepo portsrepo.ChargeAccountReader, paymentEventRepo portsrepo.PaymentEventReader) *reportingService {
	return &reportingService{
		chargeAccountRepo: chargeAccountRepo,
		paymentEventRepo:  paymentEventRepo,
	}
}

// CollectionReport groups every event with from <= paidAt < to by fee head.
func (s *reportingService) CollectionReport(ctx context.Context, from, to time.Time) (*domain.CollectionReport, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: report start must be before its end", apperrors.ErrValidation)
	}

	events, err := s.paymentEventRepo.ListPaymentEventsBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment events for collection report")
		return nil, err
	}

	ids := distinctChargeAccountIDs(events)
	accounts, err := s.chargeAccountRepo.FindChargeAccountsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve charge accounts for collection report")
		return nil, err
	}

	groups := make(map[string]*domain.CollectionGroup)
	for _, event := range events {
		feeHead := UnknownFeeHead
		if account, ok := accounts[event.ChargeAccountID]; ok {
			feeHead = account.FeeHead
		} else {
			s.GetLogger(ctx).Warn("Payment event references unknown charge account",
				slog.String("payment_event_id", event.PaymentEventID),
				slog.String("charge_account_id", event.ChargeAccountID))
		}

		group, ok := groups[feeHead]
		if !ok {
			group = &domain.CollectionGroup{FeeHead: feeHead, TotalPaid: decimal.Zero, TotalConcession: decimal.Zero}
			groups[feeHead] = group
		}
		group.Events = append(group.Events, event)
		group.EventCount++
		group.TotalPaid = group.TotalPaid.Add(event.PaidAmount)
		group.TotalConcession = group.TotalConcession.Add(event.ConcessionAmount)
	}

	report := &domain.CollectionReport{
		From:            from,
		To:              to,
		Groups:          make([]domain.CollectionGroup, 0, len(groups)),
		TotalPaid:       decimal.Zero,
		TotalConcession: decimal.Zero,
	}
	for _, feeHead := range sortedKeys(groups) {
		group := groups[feeHead]
		report.Groups = append(report.Groups, *group)
		report.TotalPaid = report.TotalPaid.Add(group.TotalPaid)
		report.TotalConcession = report.TotalConcession.Add(group.TotalConcession)
	}

	s.LogDebug(ctx, "Collection report generated", slog.Int("events", len(events)), slog.Int("groups", len(report.Groups)))
	return report, nil
}

// BalanceReport reconciles every charge account of payerType (all when empty).
func (s *reportingService) BalanceReport(ctx context.Context, payerType domain.PayerType) (*domain.BalanceReport, error) {
	if payerType != "" && payerType != domain.PayerStudent && payerType != domain.PayerSupplier {
		return nil, fmt.Errorf("%w: unknown payer type %q", apperrors.ErrValidation, payerType)
	}

	accounts, err := s.chargeAccountRepo.ListChargeAccounts(ctx, payerType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list charge accounts for balance report")
		return nil, err
	}

	ids := make([]string, len(accounts))
	for i, account := range accounts {
		ids[i] = account.ChargeAccountID
	}
	histories, err := s.paymentEventRepo.ListPaymentEventsByChargeAccounts(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment histories for balance report")
		return nil, err
	}

	groups := make(map[string]*domain.BalanceGroup)
	for _, account := range accounts {
		result, err := accounting.ComputeBalance(account.OriginalAmount, histories[account.ChargeAccountID])
		if err != nil {
			s.LogError(ctx, err, "Charge account cannot be reconciled", slog.String("charge_account_id", account.ChargeAccountID))
			return nil, fmt.Errorf("%w: charge account %s: %v", apperrors.ErrInternal, account.ChargeAccountID, err)
		}
		s.warnIfOverapplied(ctx, account.ChargeAccountID, &result)

		group, ok := groups[account.FeeHead]
		if !ok {
			group = &domain.BalanceGroup{FeeHead: account.FeeHead, TotalOriginal: decimal.Zero, TotalOutstanding: decimal.Zero}
			groups[account.FeeHead] = group
		}
		group.Accounts = append(group.Accounts, domain.AccountBalance{Account: account, Result: result})
		group.TotalOriginal = group.TotalOriginal.Add(account.OriginalAmount)
		group.TotalOutstanding = group.TotalOutstanding.Add(result.RemainingBalance)
	}

	report := &domain.BalanceReport{
		PayerType:        payerType,
		Groups:           make([]domain.BalanceGroup, 0, len(groups)),
		TotalOriginal:    decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, feeHead := range sortedKeys(groups) {
		group := groups[feeHead]
		sort.SliceStable(group.Accounts, func(i, j int) bool {
			a, b := group.Accounts[i].Account, group.Accounts[j].Account
			if a.PayerID != b.PayerID {
				return a.PayerID < b.PayerID
			}
			return a.AcademicYear < b.AcademicYear
		})
		report.Groups = append(report.Groups, *group)
		report.TotalOriginal = report.TotalOriginal.Add(group.TotalOriginal)
		report.TotalOutstanding = report.TotalOutstanding.Add(group.TotalOutstanding)
	}

	s.LogDebug(ctx, "Balance report generated", slog.Int("accounts", len(accounts)), slog.Int("groups", len(report.Groups)))
	return report, nil
}

func distinctChargeAccountIDs(events []domain.PaymentEvent) []string {
	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, event := range events {
		if _, ok := seen[event.ChargeAccountID]; ok {
			continue
		}
		seen[event.ChargeAccountID] = struct{}{}
		ids = append(ids, event.ChargeAccountID)
	}
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
