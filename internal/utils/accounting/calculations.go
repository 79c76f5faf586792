package accounting

import (
	"fmt"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fractional digits every monetary value carries.
const MoneyPrecision = 2

var (
	ErrNegativeAmount  = fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	ErrPrecision       = fmt.Errorf("%w: amount must have at most 2 decimal places", apperrors.ErrValidation)
	ErrExceedsBalance  = fmt.Errorf("%w: payment and concession exceed the remaining balance", apperrors.ErrValidation)
	ErrNothingToApply  = fmt.Errorf("%w: payment and concession are both zero", apperrors.ErrValidation)
	ErrInvalidDiscount = fmt.Errorf("%w: discount percent must be between 0 and 100", apperrors.ErrValidation)
)

var hundred = decimal.NewFromInt(100)

// ValidateMoney checks that amount is non-negative and fits in two decimal places.
func ValidateMoney(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w (got %s)", ErrNegativeAmount, amount.String())
	}
	if !amount.Equal(amount.Round(MoneyPrecision)) {
		return fmt.Errorf("%w (got %s)", ErrPrecision, amount.String())
	}
	return nil
}

// ComputeBalance reconciles a charge against its payment history.
// The remaining balance is clamped at zero; an over-applied history is reported
// through IntegrityWarning and Overapplied rather than a negative balance.
// A history event with a negative amount also raises IntegrityWarning; it is summed as stored.
func ComputeBalance(originalAmount decimal.Decimal, history []domain.PaymentEvent) (domain.ReconciliationResult, error) {
	if originalAmount.IsNegative() {
		return domain.ReconciliationResult{}, fmt.Errorf("%w: original amount %s", ErrNegativeAmount, originalAmount.String())
	}

	totalPaid := decimal.Zero
	totalConcession := decimal.Zero
	negativeEvent := false
	for _, event := range history {
		totalPaid = totalPaid.Add(event.PaidAmount)
		totalConcession = totalConcession.Add(event.ConcessionAmount)
		if event.PaidAmount.IsNegative() || event.ConcessionAmount.IsNegative() {
			negativeEvent = true
		}
	}

	result := domain.ReconciliationResult{
		OriginalAmount:   originalAmount,
		TotalPaid:        totalPaid,
		TotalConcession:  totalConcession,
		RemainingBalance: originalAmount.Sub(totalPaid).Sub(totalConcession),
		Overapplied:      decimal.Zero,
		Status:           domain.Pending,
		IntegrityWarning: negativeEvent,
	}

	if result.RemainingBalance.IsNegative() {
		result.Overapplied = result.RemainingBalance.Neg()
		result.IntegrityWarning = true
		result.RemainingBalance = decimal.Zero
	}
	if result.RemainingBalance.IsZero() {
		result.Status = domain.Settled
	}
	return result, nil
}

// ValidateProposedEvent checks a payment/concession pair against the remaining balance.
// Paying exactly the remaining balance is allowed and settles the account.
func ValidateProposedEvent(remaining, proposedPaid, proposedConcession decimal.Decimal) error {
	if proposedPaid.IsNegative() || proposedConcession.IsNegative() {
		return ErrNegativeAmount
	}
	if proposedPaid.IsZero() && proposedConcession.IsZero() {
		return ErrNothingToApply
	}
	if proposedPaid.Add(proposedConcession).GreaterThan(remaining) {
		return fmt.Errorf("%w: proposed %s, remaining %s",
			ErrExceedsBalance, proposedPaid.Add(proposedConcession).StringFixed(MoneyPrecision), remaining.StringFixed(MoneyPrecision))
	}
	return nil
}

// ApplyDiscount takes discountPercent off settlementAmount. The discount is rounded
// half-up to two places and the net payable is derived from the rounded discount,
// so discount + net always equals the settlement amount.
func ApplyDiscount(settlementAmount, discountPercent decimal.Decimal) (domain.DiscountResult, error) {
	if settlementAmount.IsNegative() {
		return domain.DiscountResult{}, ErrNegativeAmount
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return domain.DiscountResult{}, fmt.Errorf("%w (got %s)", ErrInvalidDiscount, discountPercent.String())
	}

	// Round is half away from zero, which is half-up for non-negative values.
	discount := settlementAmount.Mul(discountPercent).Div(hundred).Round(MoneyPrecision)
	return domain.DiscountResult{
		SettlementAmount: settlementAmount,
		DiscountPercent:  discountPercent,
		DiscountAmount:   discount,
		NetPayable:       settlementAmount.Sub(discount),
	}, nil
}

// BuildStatementLines walks the history in order and records the balance left after
// each event. Running balances are not clamped so drift stays visible per line.
func BuildStatementLines(originalAmount decimal.Decimal, history []domain.PaymentEvent) []domain.StatementLine {
	lines := make([]domain.StatementLine, 0, len(history))
	running := originalAmount
	for _, event := range history {
		running = running.Sub(event.Applied())
		lines = append(lines, domain.StatementLine{
			PaymentEventID:   event.PaymentEventID,
			PaidAt:           event.PaidAt,
			ReferenceNo:      event.ReferenceNo,
			PaymentMode:      event.PaymentMode,
			PaidAmount:       event.PaidAmount,
			ConcessionAmount: event.ConcessionAmount,
			RunningBalance:   running,
		})
	}
	return lines
}
