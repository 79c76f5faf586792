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

// reportingHandler handles HTTP requests for fee reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the report routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvc) {
	registerValidators()
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/collections", h.getCollectionReport)
		reports.GET("/balances", h.getBalanceReport)
	}
}

// getCollectionReport godoc
// @Summary Get the collection report
// @Description Groups the payments of a period by fee head with subtotals and a grand total. Pass format=csv to download.
// @Tags reports
// @Produce  json
// @Produce  text/csv
// @Param   from query string true "Start date (YYYY-MM-DD or RFC3339, inclusive)"
// @Param   to query string true "End date (YYYY-MM-DD inclusive, or RFC3339 exclusive)"
// @Param   format query string false "json (default) or csv"
// @Success 200 {object} dto.CollectionReportResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /reports/collections [get]
func (h *reportingHandler) getCollectionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CollectionReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	format, err := outputFormat(c)
	if err != nil {
		respondError(c, logger, err, "get collection report")
		return
	}
	from, to, err := parseReportRange(params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "get collection report")
		return
	}
	logger.Info("Generating collection report", slog.Time("from", from), slog.Time("to", to))

	report, err := h.reportingService.CollectionReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "get collection report")
		return
	}
	if format == formatCSV {
		writeCSV(c, logger, export.CollectionTable(report))
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectionReportResponse(report))
}

// getBalanceReport godoc
// @Summary Get the outstanding balance report
// @Description Lists every charge account with its remaining balance, grouped by fee head. Pass format=csv to download.
// @Tags reports
// @Produce  json
// @Produce  text/csv
// @Param   payerType query string false "STUDENT or SUPPLIER; all payers when omitted"
// @Param   format query string false "json (default) or csv"
// @Success 200 {object} dto.BalanceReportResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid payer type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "History store unavailable"
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) getBalanceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BalanceReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	format, err := outputFormat(c)
	if err != nil {
		respondError(c, logger, err, "get balance report")
		return
	}

	report, err := h.reportingService.BalanceReport(c.Request.Context(), params.PayerType)
	if err != nil {
		respondError(c, logger, err, "get balance report")
		return
	}
	if format == formatCSV {
		writeCSV(c, logger, export.BalanceTable(report))
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceReportResponse(report))
}
