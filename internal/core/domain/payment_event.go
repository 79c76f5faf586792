package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode records how a payment was received.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCheque PaymentMode = "CHEQUE"
	PaymentOnline PaymentMode = "ONLINE"
	PaymentOther  PaymentMode = "OTHER"
)

// PaymentEvent is one confirmed payment and/or concession against a ChargeAccount.
// Events are append-only; the ordered list per charge account is its payment history.
type PaymentEvent struct {
	PaymentEventID   string          `json:"paymentEventID"`
	ChargeAccountID  string          `json:"chargeAccountID"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	ConcessionAmount decimal.Decimal `json:"concessionAmount"`
	PaidAt           time.Time       `json:"paidAt"`
	ReferenceNo      string          `json:"referenceNo"` // receipt / bill number
	PaymentMode      PaymentMode     `json:"paymentMode"`
	Notes            string          `json:"notes"`
	AuditFields
}

// Applied returns the total amount this event takes off the balance.
func (e PaymentEvent) Applied() decimal.Decimal {
	return e.PaidAmount.Add(e.ConcessionAmount)
}
