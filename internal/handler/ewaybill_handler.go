package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billmitra/internal/ewaybill"
	"billmitra/internal/middleware"
)

// EWayBillHandler handles e-way bill endpoints.
type EWayBillHandler struct {
	service ewaybill.Service
}

// NewEWayBillHandler creates a new EWayBillHandler.
func NewEWayBillHandler(service ewaybill.Service) *EWayBillHandler {
	return &EWayBillHandler{service: service}
}

// Generate handles POST /api/v1/eway-bills
// @Summary Generate an e-way bill
// @Description Issues an e-way bill for a goods consignment at or above
// ₹50,000 with at least one valid HSN goods line. Validity is derived from
// the transport distance.
// @Tags eway-bills
// @Accept json
// @Produce json
// @Param request body ewaybill.GenerateInput true "Consignment details"
// @Success 201 {object} APIResponse{data=domain.EWayBill}
// @Failure 400 {object} APIResponse "Below threshold or services only"
// @Security BearerAuth
// @Router /eway-bills [post]
func (h *EWayBillHandler) Generate(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input ewaybill.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.service.Generate(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// Cancel handles POST /api/v1/eway-bills/:id/cancel
func (h *EWayBillHandler) Cancel(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid e-way bill id")
		return
	}

	bill, err := h.service.Cancel(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// GetByID handles GET /api/v1/eway-bills/:id
func (h *EWayBillHandler) GetByID(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid e-way bill id")
		return
	}

	bill, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// List handles GET /api/v1/eway-bills
func (h *EWayBillHandler) List(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	offset, limit := parsePagination(c)

	bills, total, err := h.service.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}
