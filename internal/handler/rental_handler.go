package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billmitra/internal/domain"
	"billmitra/internal/middleware"
	"billmitra/internal/rental"
)

// RentalHandler handles rental tracking endpoints.
type RentalHandler struct {
	service rental.Service
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(service rental.Service) *RentalHandler {
	return &RentalHandler{service: service}
}

// ReminderInput selects which rentals a reminder run targets. RentalID is
// required for manual reminders only.
type ReminderInput struct {
	Kind     domain.ReminderType `json:"kind" binding:"required"`
	RentalID *uuid.UUID          `json:"rental_id"`
}

// Create handles POST /api/v1/rentals
func (h *RentalHandler) Create(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input rental.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	r, err := h.service.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, r)
}

// Return handles POST /api/v1/rentals/:id/return
// @Summary Return a rental
// @Description Marks the rental returned and charges late fees for days past
// the expected return date
// @Tags rentals
// @Produce json
// @Param id path string true "Rental UUID"
// @Success 200 {object} APIResponse{data=domain.Rental}
// @Failure 409 {object} APIResponse "Already returned"
// @Security BearerAuth
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) Return(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid rental id")
		return
	}

	r, err := h.service.Return(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// GetByID handles GET /api/v1/rentals/:id
func (h *RentalHandler) GetByID(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid rental id")
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, r)
}

// List handles GET /api/v1/rentals
func (h *RentalHandler) List(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	offset, limit := parsePagination(c)

	rentals, total, err := h.service.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rentals, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// SendReminders handles POST /api/v1/rentals/reminders
func (h *RentalHandler) SendReminders(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, err := h.service.SendReminders(c.Request.Context(), tenantID, input.Kind, input.RentalID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, results)
}
