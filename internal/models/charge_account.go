package models

import "github.com/shopspring/decimal"

// ChargeAccount is the row stored in charge_accounts.
type ChargeAccount struct {
	ChargeAccountID string          `db:"charge_account_id"`
	PayerID         string          `db:"payer_id"`
	PayerType       string          `db:"payer_type"`
	FeeHead         string          `db:"fee_head"`
	AcademicYear    string          `db:"academic_year"`
	OriginalAmount  decimal.Decimal `db:"original_amount"` // NUMERIC(14,2)
	AuditFields
}
