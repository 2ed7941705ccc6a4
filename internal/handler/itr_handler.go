package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"billmitra/internal/service"
	"billmitra/internal/taxengine"
)

// ITRHandler handles income tax computation endpoints.
type ITRHandler struct {
	itrService service.ITRService
}

// NewITRHandler creates a new ITRHandler.
func NewITRHandler(itrService service.ITRService) *ITRHandler {
	return &ITRHandler{itrService: itrService}
}

// CompareRegimesInput carries a side-by-side regime comparison request.
type CompareRegimesInput struct {
	GrossIncome decimal.Decimal      `json:"gross_income" binding:"required"`
	Deductions  taxengine.Deductions `json:"deductions"`
}

// AdvanceTaxInput carries a liability to split into quarterly installments.
type AdvanceTaxInput struct {
	TotalLiability decimal.Decimal `json:"total_liability" binding:"required"`
}

// Compute handles POST /api/v1/itr/compute
// @Summary Compute income tax for a financial year
// @Description Derives taxable income (optionally presumptive under 44ADA),
// slab tax, 87A rebate, cess and the final payable or refund position.
// Recomputing the same year overwrites the stored figures.
// @Tags itr
// @Accept json
// @Produce json
// @Param request body service.ComputeITRInput true "Income details"
// @Success 200 {object} APIResponse{data=domain.ITRComputation}
// @Failure 400 {object} APIResponse "Invalid year, regime or amounts"
// @Security BearerAuth
// @Router /itr/compute [post]
func (h *ITRHandler) Compute(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.ComputeITRInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	comp, err := h.itrService.Compute(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comp)
}

// CompareRegimes handles POST /api/v1/itr/compare-regimes
func (h *ITRHandler) CompareRegimes(c *gin.Context) {
	var input CompareRegimesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	comparison, err := h.itrService.CompareRegimes(c.Request.Context(), input.GrossIncome, input.Deductions)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comparison)
}

// AdvanceTax handles POST /api/v1/itr/advance-tax
func (h *ITRHandler) AdvanceTax(c *gin.Context) {
	var input AdvanceTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	installments, err := h.itrService.AdvanceTax(c.Request.Context(), input.TotalLiability)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, installments)
}

// GetByYear handles GET /api/v1/itr/:year
func (h *ITRHandler) GetByYear(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	comp, err := h.itrService.GetByYear(c.Request.Context(), tenantID, userID, c.Param("year"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comp)
}

// List handles GET /api/v1/itr
func (h *ITRHandler) List(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	comps, err := h.itrService.ListByUser(c.Request.Context(), tenantID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comps)
}
