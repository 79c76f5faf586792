package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/school_fee_app/internal/core/ports/services"
	"github.com/SscSPs/school_fee_app/internal/dto"
	"github.com/SscSPs/school_fee_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chargeAccountHandler handles HTTP requests related to charge accounts.
type chargeAccountHandler struct {
	chargeAccountService portssvc.ChargeAccountSvcFacade
}

func newChargeAccountHandler(cas portssvc.ChargeAccountSvcFacade) *chargeAccountHandler {
	return &chargeAccountHandler{chargeAccountService: cas}
}

// RegisterChargeAccountRoutes registers routes for charge accounts and payer lookups.
func RegisterChargeAccountRoutes(rg *gin.RouterGroup, cas portssvc.ChargeAccountSvcFacade) {
	registerValidators()
	h := newChargeAccountHandler(cas)

	accounts := rg.Group("/charge-accounts")
	{
		accounts.POST("", h.createChargeAccount)
		accounts.GET("/:chargeAccountID", h.getChargeAccount)
	}
	rg.GET("/payers/:payerID/charge-accounts", h.listChargeAccountsByPayer)
}

// createChargeAccount godoc
// @Summary Assign a fee head to a payer
// @Description Creates a charge account holding the original amount owed for one fee head
// @Tags charge-accounts
// @Accept  json
// @Produce  json
// @Param   chargeAccount body dto.CreateChargeAccountRequest true "Charge account details"
// @Success 201 {object} dto.ChargeAccountResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Fee head already assigned for this year"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /charge-accounts [post]
func (h *chargeAccountHandler) createChargeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChargeAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger.Info("Received request to create charge account",
		slog.String("payer_id", req.PayerID), slog.String("fee_head", req.FeeHead))

	account, err := h.chargeAccountService.CreateChargeAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "create charge account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToChargeAccountResponse(account))
}

// getChargeAccount godoc
// @Summary Get a charge account
// @Tags charge-accounts
// @Produce  json
// @Param   chargeAccountID path string true "Charge account ID"
// @Success 200 {object} dto.ChargeAccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Charge account not found"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /charge-accounts/{chargeAccountID} [get]
func (h *chargeAccountHandler) getChargeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeAccountID := c.Param("chargeAccountID")

	account, err := h.chargeAccountService.GetChargeAccount(c.Request.Context(), chargeAccountID)
	if err != nil {
		respondError(c, logger, err, "get charge account")
		return
	}
	c.JSON(http.StatusOK, dto.ToChargeAccountResponse(account))
}

// listChargeAccountsByPayer godoc
// @Summary List a payer's charge accounts
// @Tags charge-accounts
// @Produce  json
// @Param   payerID path string true "Student or supplier ID"
// @Success 200 {object} dto.ListChargeAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /payers/{payerID}/charge-accounts [get]
func (h *chargeAccountHandler) listChargeAccountsByPayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payerID := c.Param("payerID")

	accounts, err := h.chargeAccountService.ListChargeAccountsByPayer(c.Request.Context(), payerID)
	if err != nil {
		respondError(c, logger, err, "list charge accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChargeAccountsResponse(accounts))
}
