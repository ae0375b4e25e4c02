package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /leads
// @Summary Create a new lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetLeadByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Get tenant leads with pagination, optionally filtered by status
// @Tags leads
// @Accept json
// @Produce json
// @Param status query string false "Lead status filter" Enums(new, contacted, qualified, unqualified, converted)
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.LeadListResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	leads, err := h.leadService.GetLeads(tenantID, c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// UpdateLead handles PATCH /leads/:id
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body service.UpdateLeadRequest true "Lead data"
// @Success 200 {object} service.LeadResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [patch]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.DeleteLead(tenantID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QualifyLead handles POST /leads/:id/qualify
// @Summary Qualify a lead
// @Description Score the lead's transcript and apply the qualification result
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body service.QualifyLeadRequest true "Optional ad-hoc transcript"
// @Success 200 {object} service.QualifyLeadResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 422 {object} ErrorResponse "No transcript available"
// @Security BearerAuth
// @Router /leads/{id}/qualify [post]
func (h *LeadHandler) QualifyLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	// Body is optional: without a transcript the stored conversations are scored.
	var req service.QualifyLeadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.leadService.QualifyLead(c.Request.Context(), tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConvertLead handles POST /leads/:id/convert
// @Summary Convert a lead
// @Description Mark a lead as converted
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 422 {object} ErrorResponse "Lead already converted"
// @Security BearerAuth
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.ConvertLead(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}
