package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEvent is the row stored in payment_events. Rows are never updated.
type PaymentEvent struct {
	PaymentEventID   string          `db:"payment_event_id"`
	ChargeAccountID  string          `db:"charge_account_id"`
	PaidAmount       decimal.Decimal `db:"paid_amount"`
	ConcessionAmount decimal.Decimal `db:"concession_amount"`
	PaidAt           time.Time       `db:"paid_at"`
	ReferenceNo      string          `db:"reference_no"`
	PaymentMode      string          `db:"payment_mode"`
	Notes            string          `db:"notes"`
	AuditFields
}
