package billingapi

import (
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// chargeAccountPayload is the Billing API representation of a charge account.
// Amounts travel as decimal strings.
type chargeAccountPayload struct {
	ChargeAccountID string          `json:"chargeAccountId"`
	PayerID         string          `json:"payerId"`
	PayerType       string          `json:"payerType"`
	FeeHead         string          `json:"feeHead"`
	AcademicYear    string          `json:"academicYear"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

type paymentEventPayload struct {
	PaymentEventID   string          `json:"paymentEventId"`
	ChargeAccountID  string          `json:"chargeAccountId"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	ConcessionAmount decimal.Decimal `json:"concessionAmount"`
	PaidAt           time.Time       `json:"paidAt"`
	ReferenceNo      string          `json:"referenceNo"`
	PaymentMode      string          `json:"paymentMode"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

type chargeAccountList struct {
	ChargeAccounts []chargeAccountPayload `json:"chargeAccounts"`
}

type paymentEventList struct {
	Payments  []paymentEventPayload `json:"payments"`
	NextToken *string               `json:"nextToken,omitempty"`
}

func fromDomainChargeAccount(a domain.ChargeAccount) chargeAccountPayload {
	return chargeAccountPayload{
		ChargeAccountID: a.ChargeAccountID,
		PayerID:         a.PayerID,
		PayerType:       string(a.PayerType),
		FeeHead:         a.FeeHead,
		AcademicYear:    a.AcademicYear,
		OriginalAmount:  a.OriginalAmount,
		CreatedAt:       a.CreatedAt,
		CreatedBy:       a.CreatedBy,
		LastUpdatedAt:   a.LastUpdatedAt,
		LastUpdatedBy:   a.LastUpdatedBy,
	}
}

func (p chargeAccountPayload) toDomain() domain.ChargeAccount {
	return domain.ChargeAccount{
		ChargeAccountID: p.ChargeAccountID,
		PayerID:         p.PayerID,
		PayerType:       domain.PayerType(p.PayerType),
		FeeHead:         p.FeeHead,
		AcademicYear:    p.AcademicYear,
		OriginalAmount:  p.OriginalAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     p.CreatedAt,
			CreatedBy:     p.CreatedBy,
			LastUpdatedAt: p.LastUpdatedAt,
			LastUpdatedBy: p.LastUpdatedBy,
		},
	}
}

func fromDomainPaymentEvent(e domain.PaymentEvent) paymentEventPayload {
	return paymentEventPayload{
		PaymentEventID:   e.PaymentEventID,
		ChargeAccountID:  e.ChargeAccountID,
		PaidAmount:       e.PaidAmount,
		ConcessionAmount: e.ConcessionAmount,
		PaidAt:           e.PaidAt,
		ReferenceNo:      e.ReferenceNo,
		PaymentMode:      string(e.PaymentMode),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
		LastUpdatedAt:    e.LastUpdatedAt,
		LastUpdatedBy:    e.LastUpdatedBy,
	}
}

func (p paymentEventPayload) toDomain() domain.PaymentEvent {
	return domain.PaymentEvent{
		PaymentEventID:   p.PaymentEventID,
		ChargeAccountID:  p.ChargeAccountID,
		PaidAmount:       p.PaidAmount,
		ConcessionAmount: p.ConcessionAmount,
		PaidAt:           p.PaidAt,
		ReferenceNo:      p.ReferenceNo,
		PaymentMode:      domain.PaymentMode(p.PaymentMode),
		Notes:            p.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     p.CreatedAt,
			CreatedBy:     p.CreatedBy,
			LastUpdatedAt: p.LastUpdatedAt,
			LastUpdatedBy: p.LastUpdatedBy,
		},
	}
}

func toDomainPaymentEvents(payloads []paymentEventPayload) []domain.PaymentEvent {
	events := make([]domain.PaymentEvent, len(payloads))
	for i, p := range payloads {
		events[i] = p.toDomain()
	}
	return events
}
