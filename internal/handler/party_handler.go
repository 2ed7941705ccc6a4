package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billmitra/internal/domain"
	"billmitra/internal/middleware"
	"billmitra/internal/service"
)

// PartyHandler handles customer and supplier endpoints.
type PartyHandler struct {
	partyService service.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// Create handles POST /api/v1/parties
func (h *PartyHandler) Create(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input service.CreatePartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, party)
}

// List handles GET /api/v1/parties?type=customer|supplier
func (h *PartyHandler) List(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	partyType := domain.PartyType(c.Query("type"))
	if partyType != "" && partyType != domain.PartyCustomer && partyType != domain.PartySupplier {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "type must be customer or supplier")
		return
	}

	offset, limit := parsePagination(c)

	parties, total, err := h.partyService.List(c.Request.Context(), tenantID, partyType, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, parties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/parties/:id
func (h *PartyHandler) GetByID(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	party, err := h.partyService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, party)
}

// Update handles PUT /api/v1/parties/:id
func (h *PartyHandler) Update(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	var input service.UpdatePartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	party, err := h.partyService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, party)
}

// Delete handles DELETE /api/v1/parties/:id
func (h *PartyHandler) Delete(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "party deleted"})
}
