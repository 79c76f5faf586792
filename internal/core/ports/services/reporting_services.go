package services

import (
	"context"
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
)

// ReportingSvc defines operations for generating fee reports
type ReportingSvc interface {
	// CollectionReport groups the collections of a period by fee head.
	CollectionReport(ctx context.Context, from, to time.Time) (*domain.CollectionReport, error)

	// BalanceReport lists outstanding balances grouped by fee head.
	BalanceReport(ctx context.Context, payerType domain.PayerType) (*domain.BalanceReport, error)
}
