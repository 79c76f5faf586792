package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/school_fee_app/internal/core/ports/services"
	"github.com/SscSPs/school_fee_app/internal/dto"
	"github.com/SscSPs/school_fee_app/internal/export"
	"github.com/SscSPs/school_fee_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles balance, payment and statement requests for a charge account.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// RegisterReconciliationRoutes registers the per-account balance and payment routes
// and the discount quote route.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade) {
	registerValidators()
	h := newReconciliationHandler(rs)

	account := rg.Group("/charge-accounts/:chargeAccountID")
	{
		account.GET("/balance", h.getBalance)
		account.POST("/payments/preview", h.previewPayment)
		account.POST("/payments", h.recordPayment)
		account.GET("/payments", h.listPayments)
		account.GET("/statement", h.getStatement)
	}
	rg.POST("/discounts/quote", h.quoteDiscount)
}

// getBalance godoc
// @Summary Get the reconciled balance of a charge account
// @Description Sums the payment history against the original amount. The remaining balance never goes below zero; an over-applied history is flagged with integrityWarning.
// @Tags reconciliation
// @Produce  json
// @Param   chargeAccountID path string true "Charge account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID}/balance [get]
func (h *reconciliationHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	result, err := h.reconciliationService.GetBalance(c.Request.Context(), chargeAccountID)
	if err != nil {
		respondError(c, logger, err, "get balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(chargeAccountID, result))
}

// previewPayment godoc
// @Summary Validate a proposed payment
// @Description Checks a payment/concession pair against the remaining balance without recording it, and returns the balance the account would reach.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   chargeAccountID path string true "Charge account ID"
// @Param   proposal body dto.PaymentProposalRequest true "Proposed amounts"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed amounts"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 422 {object} handlers.ErrorResponse "Exceeds remaining balance or nothing to apply"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID}/payments/preview [post]
func (h *reconciliationHandler) previewPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	var req dto.PaymentProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	result, err := h.reconciliationService.PreviewPayment(c.Request.Context(), chargeAccountID, req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "preview payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(chargeAccountID, result))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Validates a payment/concession pair against the remaining balance and appends it to the history.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   chargeAccountID path string true "Charge account ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate payment"
// @Failure 422 {object} handlers.ErrorResponse "Exceeds remaining balance or nothing to apply"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID}/payments [post]
func (h *reconciliationHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger.Info("Received request to record payment",
		slog.String("charge_account_id", chargeAccountID), slog.String("reference_no", req.ReferenceNo))

	event, result, err := h.reconciliationService.RecordPayment(c.Request.Context(), chargeAccountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment: dto.ToPaymentEventResponse(event),
		Balance: dto.ToBalanceResponse(chargeAccountID, result),
	})
}

// listPayments godoc
// @Summary List payments of a charge account
// @Description Returns the payment history oldest first, one page at a time.
// @Tags reconciliation
// @Produce  json
// @Param   chargeAccountID path string true "Charge account ID"
// @Param   limit query int false "Page size (max 100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page token"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID}/payments [get]
func (h *reconciliationHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.reconciliationService.ListPayments(c.Request.Context(), chargeAccountID, params)
	if err != nil {
		respondError(c, logger, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getStatement godoc
// @Summary Get the statement of a charge account
// @Description Lists every payment with the balance left after it. Pass format=csv to download.
// @Tags reconciliation
// @Produce  json
// @Produce  text/csv
// @Param   chargeAccountID path string true "Charge account ID"
// @Param   format query string false "json (default) or csv"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} handlers.ErrorResponse "Unsupported format"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID}/statement [get]
func (h *reconciliationHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	format, err := outputFormat(c)
	if err != nil {
		respondError(c, logger, err, "get statement")
		return
	}

	statement, err := h.reconciliationService.GetStatement(c.Request.Context(), chargeAccountID)
	if err != nil {
		respondError(c, logger, err, "get statement")
		return
	}
	if format == formatCSV {
		writeCSV(c, logger, export.StatementTable(statement))
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// quoteDiscount godoc
// @Summary Quote a settlement discount
// @Description Takes a percentage off a settlement amount. The discount is rounded half-up to two places.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   quote body dto.DiscountQuoteRequest true "Settlement amount and discount percent"
// @Success 200 {object} dto.DiscountQuoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed amounts"
// @Failure 422 {object} handlers.ErrorResponse "Discount percent outside 0..100"
// @Security BearerAuth
// @Router /discounts/quote [post]
func (h *reconciliationHandler) quoteDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DiscountQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	result, err := h.reconciliationService.QuoteDiscount(c.Request.Context(), req.SettlementAmount, req.DiscountPercent)
	if err != nil {
		respondError(c, logger, err, "quote discount")
		return
	}
	c.JSON(http.StatusOK, dto.ToDiscountQuoteResponse(result))
}
