package pgsql

import (
	"testing"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckAgainstStoredHistory(t *testing.T) {
	dec := decimal.RequireFromString
	totals := func(paid, concession string) domain.PaymentEvent {
		return domain.PaymentEvent{PaidAmount: dec(paid), ConcessionAmount: dec(concession)}
	}
	proposal := func(paid, concession string) domain.PaymentEvent {
		return domain.PaymentEvent{ChargeAccountID: "ca-bus", PaidAmount: dec(paid), ConcessionAmount: dec(concession)}
	}

	tests := []struct {
		name     string
		original string
		stored   domain.PaymentEvent
		event    domain.PaymentEvent
		wantErr  error
	}{
		{name: "fits the stored history", original: "500", stored: totals("200", "0"), event: proposal("300", "0")},
		{name: "concession settles the rest", original: "500", stored: totals("200", "50"), event: proposal("200", "50")},
		// The caller saw 200 applied and a remaining 300, but another payment of 200
		// was committed before the lock was taken.
		{name: "stale snapshot is rejected", original: "500", stored: totals("400", "0"), event: proposal("300", "0"), wantErr: accounting.ErrExceedsBalance},
		{name: "settled account rejects more", original: "500", stored: totals("450", "50"), event: proposal("0.01", "0"), wantErr: accounting.ErrExceedsBalance},
		{name: "empty event", original: "500", stored: totals("0", "0"), event: proposal("0", "0"), wantErr: accounting.ErrNothingToApply},
		{name: "corrupt original amount", original: "-1", stored: totals("0", "0"), event: proposal("1", "0"), wantErr: accounting.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAgainstStoredHistory(dec(tt.original), tt.stored, tt.event)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
