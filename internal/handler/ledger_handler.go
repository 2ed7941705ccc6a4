package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billmitra/internal/middleware"
	"billmitra/internal/service"
)

// LedgerHandler handles party ledger and day book endpoints.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// parseDateRange extracts the from/to query params. Both are required and
// must be YYYY-MM-DD; to is inclusive through end of day.
func parseDateRange(c *gin.Context) (from, to time.Time, err error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' and 'to' query parameters are required")
	}
	from, err = time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
	}
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("'to' must not be before 'from'")
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

// PartyLedger handles GET /api/v1/ledgers/party/:id
// @Summary Party ledger
// @Description Chronological debit/credit statement for one party with a
// running balance
// @Tags ledgers
// @Produce json
// @Param id path string true "Party UUID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} APIResponse{data=[]domain.LedgerEntry}
// @Failure 502 {object} APIResponse "A ledger source could not be fetched"
// @Security BearerAuth
// @Router /ledgers/party/{id} [get]
func (h *LedgerHandler) PartyLedger(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := h.ledgerService.PartyLedger(c.Request.Context(), tenantID, partyID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}

// DayBook handles GET /api/v1/ledgers/daybook
func (h *LedgerHandler) DayBook(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := h.ledgerService.DayBook(c.Request.Context(), tenantID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}

// ExportPartyLedgerCSV handles GET /api/v1/ledgers/party/:id/export
// With upload=true the file is also uploaded to object storage and a presigned
// URL is returned instead of the file body.
func (h *LedgerHandler) ExportPartyLedgerCSV(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	upload := c.Query("upload") == "true"

	artifact, err := h.ledgerService.ExportPartyLedgerCSV(c.Request.Context(), tenantID, partyID, from, to, upload)
	if err != nil {
		HandleError(c, err)
		return
	}

	if upload {
		RespondOK(c, artifact)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// ExportDayBookXLSX handles GET /api/v1/ledgers/daybook/export
func (h *LedgerHandler) ExportDayBookXLSX(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	upload := c.Query("upload") == "true"

	artifact, err := h.ledgerService.ExportDayBookXLSX(c.Request.Context(), tenantID, from, to, upload)
	if err != nil {
		HandleError(c, err)
		return
	}

	if upload {
		RespondOK(c, artifact)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
