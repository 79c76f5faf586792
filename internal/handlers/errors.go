package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeExceedsBalance  = "EXCEEDS_BALANCE"
	CodeNothingToApply  = "NOTHING_TO_APPLY"
	CodeInvalidDiscount = "INVALID_DISCOUNT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeDuplicate       = "DUPLICATE"
	CodeForbidden       = "FORBIDDEN"
	CodeRemote          = "REMOTE_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// classifyError maps an error chain to an HTTP status and error code.
// Order matters: the reconciler errors also match apperrors.ErrValidation.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, accounting.ErrExceedsBalance):
		return http.StatusUnprocessableEntity, CodeExceedsBalance
	case errors.Is(err, accounting.ErrNothingToApply):
		return http.StatusUnprocessableEntity, CodeNothingToApply
	case errors.Is(err, accounting.ErrInvalidDiscount):
		return http.StatusUnprocessableEntity, CodeInvalidDiscount
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, CodeDuplicate
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, apperrors.ErrRemote):
		return http.StatusBadGateway, CodeRemote
	}
	return http.StatusInternalServerError, CodeInternal
}

// respondError writes the error reply for err. Server-side failures are logged
// and their details kept out of the body.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status, code := classifyError(err)
	msg := err.Error()
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("Failed to "+action, slog.String("error", err.Error()), slog.Int("status", status))
		if status == http.StatusBadGateway {
			msg = "Upstream history store unavailable"
		} else {
			msg = "Failed to " + action
		}
	default:
		logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}

// respondBindError replies 400 for a request body or query that could not be bound.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: CodeValidation})
}
