package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func event(paid, concession string) domain.PaymentEvent {
	return domain.PaymentEvent{
		PaidAmount:       dec(paid),
		ConcessionAmount: dec(concession),
		PaidAt:           time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		history       []domain.PaymentEvent
		wantRemaining string
		wantStatus    domain.BalanceStatus
		wantWarning   bool
		wantOver      string
	}{
		{
			name:          "new account keeps original amount",
			original:      "500",
			history:       nil,
			wantRemaining: "500",
			wantStatus:    domain.Pending,
			wantOver:      "0",
		},
		{
			name:          "zero original with empty history is settled",
			original:      "0",
			history:       []domain.PaymentEvent{},
			wantRemaining: "0",
			wantStatus:    domain.Settled,
			wantOver:      "0",
		},
		{
			name:          "partial payment",
			original:      "500",
			history:       []domain.PaymentEvent{event("200", "0")},
			wantRemaining: "300",
			wantStatus:    domain.Pending,
			wantOver:      "0",
		},
		{
			name:          "payments and concessions settle exactly",
			original:      "1250.50",
			history:       []domain.PaymentEvent{event("1000", "0"), event("200.25", "50.25")},
			wantRemaining: "0",
			wantStatus:    domain.Settled,
			wantOver:      "0",
		},
		{
			name:          "cents do not drift",
			original:      "0.30",
			history:       []domain.PaymentEvent{event("0.10", "0"), event("0.10", "0"), event("0.10", "0")},
			wantRemaining: "0",
			wantStatus:    domain.Settled,
			wantOver:      "0",
		},
		{
			name:          "over-applied history is clamped and flagged",
			original:      "100",
			history:       []domain.PaymentEvent{event("80", "0"), event("30", "0.01")},
			wantRemaining: "0",
			wantStatus:    domain.Settled,
			wantWarning:   true,
			wantOver:      "10.01",
		},
		{
			name:          "negative paid amount in history is flagged",
			original:      "100",
			history:       []domain.PaymentEvent{event("-50", "0")},
			wantRemaining: "150",
			wantStatus:    domain.Pending,
			wantWarning:   true,
			wantOver:      "0",
		},
		{
			name:          "negative concession is flagged even when it nets out",
			original:      "100",
			history:       []domain.PaymentEvent{event("60", "-10"), event("50", "0")},
			wantRemaining: "0",
			wantStatus:    domain.Settled,
			wantWarning:   true,
			wantOver:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.ComputeBalance(dec(tt.original), tt.history)
			require.NoError(t, err)
			assert.True(t, dec(tt.wantRemaining).Equal(got.RemainingBalance), "remaining: got %s", got.RemainingBalance)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantWarning, got.IntegrityWarning)
			assert.True(t, dec(tt.wantOver).Equal(got.Overapplied), "overapplied: got %s", got.Overapplied)
		})
	}
}

func TestComputeBalance_NegativeOriginal(t *testing.T) {
	_, err := accounting.ComputeBalance(dec("-1"), nil)
	assert.ErrorIs(t, err, accounting.ErrNegativeAmount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestComputeBalance_IsPure(t *testing.T) {
	history := []domain.PaymentEvent{event("120.10", "5"), event("30", "0")}
	first, err := accounting.ComputeBalance(dec("400"), history)
	require.NoError(t, err)
	second, err := accounting.ComputeBalance(dec("400"), history)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateProposedEvent(t *testing.T) {
	tests := []struct {
		name       string
		remaining  string
		paid       string
		concession string
		wantErr    error
	}{
		{name: "exactly settles", remaining: "300", paid: "300", concession: "0"},
		{name: "paid plus concession settles", remaining: "300", paid: "250", concession: "50"},
		{name: "concession only", remaining: "300", paid: "0", concession: "25"},
		{name: "one cent over", remaining: "300", paid: "300.01", concession: "0", wantErr: accounting.ErrExceedsBalance},
		{name: "epsilon over", remaining: "300", paid: "300.0000001", concession: "0", wantErr: accounting.ErrExceedsBalance},
		{name: "combined over", remaining: "300", paid: "200", concession: "101", wantErr: accounting.ErrExceedsBalance},
		{name: "nothing to apply", remaining: "300", paid: "0", concession: "0", wantErr: accounting.ErrNothingToApply},
		{name: "negative paid", remaining: "300", paid: "-1", concession: "0", wantErr: accounting.ErrNegativeAmount},
		{name: "negative concession", remaining: "300", paid: "10", concession: "-1", wantErr: accounting.ErrNegativeAmount},
		{name: "settled account rejects payment", remaining: "0", paid: "1", concession: "0", wantErr: accounting.ErrExceedsBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateProposedEvent(dec(tt.remaining), dec(tt.paid), dec(tt.concession))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		settlement   string
		percent      string
		wantDiscount string
		wantNet      string
		wantErr      error
	}{
		{name: "ten percent", settlement: "100", percent: "10", wantDiscount: "10.00", wantNet: "90.00"},
		{name: "half-up rounding", settlement: "33.33", percent: "50", wantDiscount: "16.67", wantNet: "16.66"},
		{name: "zero percent", settlement: "45.50", percent: "0", wantDiscount: "0.00", wantNet: "45.50"},
		{name: "full discount", settlement: "45.50", percent: "100", wantDiscount: "45.50", wantNet: "0.00"},
		{name: "fractional percent", settlement: "1000", percent: "12.5", wantDiscount: "125.00", wantNet: "875.00"},
		{name: "above hundred", settlement: "100", percent: "100.01", wantErr: accounting.ErrInvalidDiscount},
		{name: "negative percent", settlement: "100", percent: "-5", wantErr: accounting.ErrInvalidDiscount},
		{name: "negative settlement", settlement: "-100", percent: "5", wantErr: accounting.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.ApplyDiscount(dec(tt.settlement), dec(tt.percent))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiscount, got.DiscountAmount.StringFixed(2))
			assert.Equal(t, tt.wantNet, got.NetPayable.StringFixed(2))
			assert.True(t, got.DiscountAmount.Add(got.NetPayable).Equal(dec(tt.settlement)))
		})
	}
}

func TestValidateMoney(t *testing.T) {
	assert.NoError(t, accounting.ValidateMoney(dec("10.25")))
	assert.NoError(t, accounting.ValidateMoney(dec("0")))
	assert.NoError(t, accounting.ValidateMoney(dec("10.250")))
	assert.ErrorIs(t, accounting.ValidateMoney(dec("10.255")), accounting.ErrPrecision)
	assert.ErrorIs(t, accounting.ValidateMoney(dec("-0.01")), accounting.ErrNegativeAmount)
}

func TestBuildStatementLines(t *testing.T) {
	history := []domain.PaymentEvent{event("200", "0"), event("100", "50"), event("150", "0")}
	lines := accounting.BuildStatementLines(dec("500"), history)

	require.Len(t, lines, 3)
	assert.Equal(t, "300.00", lines[0].RunningBalance.StringFixed(2))
	assert.Equal(t, "150.00", lines[1].RunningBalance.StringFixed(2))
	assert.Equal(t, "0.00", lines[2].RunningBalance.StringFixed(2))
}

// The worked example used by the bus fee entry screen.
func TestBusFeeScenario(t *testing.T) {
	result, err := accounting.ComputeBalance(dec("500"), []domain.PaymentEvent{event("200", "0")})
	require.NoError(t, err)
	assert.Equal(t, "300.00", result.RemainingBalance.StringFixed(2))
	assert.Equal(t, domain.Pending, result.Status)

	assert.NoError(t, accounting.ValidateProposedEvent(result.RemainingBalance, dec("300"), decimal.Zero))
	assert.ErrorIs(t, accounting.ValidateProposedEvent(result.RemainingBalance, dec("301"), decimal.Zero), accounting.ErrExceedsBalance)
}
