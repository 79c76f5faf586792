package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// warnIfOverapplied reports a history whose applied total exceeds the original amount,
// or that holds negative amounts. The caller keeps going with the computed balance.
func (s *BaseService) warnIfOverapplied(ctx context.Context, chargeAccountID string, result *domain.ReconciliationResult) {
	if !result.IntegrityWarning {
		return
	}
	msg := "Charge account over-applied"
	if !result.Overapplied.IsPositive() {
		msg = "Charge account history has negative amounts"
	}
	s.GetLogger(ctx).Warn(msg,
		slog.String("charge_account_id", chargeAccountID),
		slog.String("original_amount", result.OriginalAmount.String()),
		slog.String("total_paid", result.TotalPaid.String()),
		slog.String("total_concession", result.TotalConcession.String()),
		slog.String("overapplied", result.Overapplied.String()),
	)
}
