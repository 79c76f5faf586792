package mapping

import (
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/models"
)

func ToModelPaymentEvent(d domain.PaymentEvent) models.PaymentEvent {
	return models.PaymentEvent{
		PaymentEventID:   d.PaymentEventID,
		ChargeAccountID:  d.ChargeAccountID,
		PaidAmount:       d.PaidAmount,
		ConcessionAmount: d.ConcessionAmount,
		PaidAt:           d.PaidAt,
		ReferenceNo:      d.ReferenceNo,
		PaymentMode:      string(d.PaymentMode),
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPaymentEvent(m models.PaymentEvent) domain.PaymentEvent {
	return domain.PaymentEvent{
		PaymentEventID:   m.PaymentEventID,
		ChargeAccountID:  m.ChargeAccountID,
		PaidAmount:       m.PaidAmount,
		ConcessionAmount: m.ConcessionAmount,
		PaidAt:           m.PaidAt,
		ReferenceNo:      m.ReferenceNo,
		PaymentMode:      domain.PaymentMode(m.PaymentMode),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentEvents converts a slice of model rows, keeping their order.
func ToDomainPaymentEvents(rows []models.PaymentEvent) []domain.PaymentEvent {
	events := make([]domain.PaymentEvent, len(rows))
	for i, row := range rows {
		events[i] = ToDomainPaymentEvent(row)
	}
	return events
}
