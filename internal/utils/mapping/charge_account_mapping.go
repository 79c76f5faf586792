package mapping

import (
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/models"
)

func ToModelChargeAccount(d domain.ChargeAccount) models.ChargeAccount {
	return models.ChargeAccount{
		ChargeAccountID: d.ChargeAccountID,
		PayerID:         d.PayerID,
		PayerType:       string(d.PayerType),
		FeeHead:         d.FeeHead,
		AcademicYear:    d.AcademicYear,
		OriginalAmount:  d.OriginalAmount,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainChargeAccount(m models.ChargeAccount) domain.ChargeAccount {
	return domain.ChargeAccount{
		ChargeAccountID: m.ChargeAccountID,
		PayerID:         m.PayerID,
		PayerType:       domain.PayerType(m.PayerType),
		FeeHead:         m.FeeHead,
		AcademicYear:    m.AcademicYear,
		OriginalAmount:  m.OriginalAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
