package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/LedgerLens/ledger_reports_app/internal/apperrors"
	"github.com/LedgerLens/ledger_reports_app/internal/core/domain"
	portssvc "github.com/LedgerLens/ledger_reports_app/internal/core/ports/services"
	"github.com/LedgerLens/ledger_reports_app/internal/dto"
	"github.com/LedgerLens/ledger_reports_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is the nginx convention for a caller that
// disconnected before the response was ready.
const statusClientClosedRequest = 499

// reportsHandler handles HTTP requests for the two financial reports
type reportsHandler struct {
	statementService   portssvc.LedgerStatementSvc
	outstandingService portssvc.OutstandingSvc
}

// newReportsHandler creates a new reportsHandler
func newReportsHandler(statement portssvc.LedgerStatementSvc, outstanding portssvc.OutstandingSvc) *reportsHandler {
	return &reportsHandler{
		statementService:   statement,
		outstandingService: outstanding,
	}
}

// registerReportRoutes registers routes related to financial reports
func registerReportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReportsHandler(services.LedgerStatement, services.Outstanding)

	reports := rg.Group("/companies/:company_id/reports")
	{
		reports.GET("/ledger-statement", h.getLedgerStatement)
		reports.GET("/outstanding", h.getOutstanding)
	}
}

type ledgerStatementQuery struct {
	Ledger   string `form:"ledger" binding:"required"`
	FromDate string `form:"from_date" binding:"required,isodate"`
	ToDate   string `form:"to_date" binding:"required,isodate"`
}

type outstandingQuery struct {
	ReportType string `form:"report_type" binding:"omitempty,oneof=receivables payables both"`
	AsOn       string `form:"as_on" binding:"omitempty,isodate"`
}

// getLedgerStatement godoc
// @Summary Generate ledger statement report
// @Description Computes the per-account running-balance statement for a date range
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param ledger query string true "Ledger name"
// @Param from_date query string true "Period start (YYYY-MM-DD)"
// @Param to_date query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown company or ledger"
// @Failure 422 {object} map[string]interface{} "Inconsistent accounting data"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/ledger-statement [get]
func (h *reportsHandler) getLedgerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var query ledgerStatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid ledger statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "ledger, from_date and to_date are required; dates use YYYY-MM-DD"})
		return
	}

	// Formats already validated by the isodate binding
	from, _ := time.Parse("2006-01-02", query.FromDate)
	to, _ := time.Parse("2006-01-02", query.ToDate)

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("ledger", query.Ledger),
		slog.String("from_date", query.FromDate),
		slog.String("to_date", query.ToDate),
	)
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("user_id", userID))
	}
	logger.Info("Received request to generate ledger statement")

	statement, err := h.statementService.GetLedgerStatement(c.Request.Context(), companyID, query.Ledger, from, to)
	if err != nil {
		respondReportError(c, logger, err, "ledger statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerStatementResponse(statement))
}

// getOutstanding godoc
// @Summary Generate bill-wise outstanding report
// @Description Computes the outstanding/ageing schedule as of a reference date
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param report_type query string false "receivables, payables or both" default(both)
// @Param as_on query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.OutstandingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown company"
// @Failure 422 {object} map[string]interface{} "Inconsistent accounting data"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/outstanding [get]
func (h *reportsHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var query outstandingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid outstanding query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_type must be receivables, payables or both; as_on uses YYYY-MM-DD"})
		return
	}

	reportType := domain.ReportType(query.ReportType)
	if reportType == "" {
		reportType = domain.ReportBoth
	}

	asOn := time.Now().UTC().Truncate(24 * time.Hour)
	if query.AsOn != "" {
		asOn, _ = time.Parse("2006-01-02", query.AsOn)
	}

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("report_type", string(reportType)),
		slog.String("as_on", asOn.Format("2006-01-02")),
	)
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("user_id", userID))
	}
	logger.Info("Received request to generate outstanding report")

	report, err := h.outstandingService.GetOutstanding(c.Request.Context(), companyID, reportType, asOn)
	if err != nil {
		respondReportError(c, logger, err, "outstanding report")
		return
	}

	c.JSON(http.StatusOK, dto.ToOutstandingResponse(report))
}

// respondReportError maps the engine's error taxonomy onto HTTP statuses.
// "No data in range" is not an error and never reaches this point; the
// services return empty rows with zero totals for that case.
func respondReportError(c *gin.Context, logger *slog.Logger, err error, report string) {
	var inconsistent *apperrors.InconsistentDataError
	switch {
	case errors.As(err, &inconsistent):
		logger.Warn("Inconsistent accounting data detected", slog.Int("violations", len(inconsistent.Details)))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "imported data violates accounting invariants",
			"details": inconsistent.Details,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Report entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidRange):
		logger.Warn("Invalid report range")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Storage collaborator failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to read transaction store"})
	case errors.Is(err, context.Canceled):
		logger.Info("Request cancelled by caller")
		c.Status(statusClientClosedRequest)
	default:
		logger.Error("Failed to generate "+report, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate " + report})
	}
}
