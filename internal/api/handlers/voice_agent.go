package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VoiceAgentHandler handles HTTP requests for voice agent configurations
type VoiceAgentHandler struct {
	agentService service.VoiceAgentServiceInterface
}

// NewVoiceAgentHandler creates a new voice agent handler
func NewVoiceAgentHandler(agentService service.VoiceAgentServiceInterface) *VoiceAgentHandler {
	return &VoiceAgentHandler{agentService: agentService}
}

// CreateVoiceAgent handles POST /voice-agents
// @Summary Create a voice agent
// @Tags voice-agents
// @Accept json
// @Produce json
// @Param agent body service.CreateVoiceAgentRequest true "Agent data"
// @Success 201 {object} service.VoiceAgentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Agent name already exists"
// @Security BearerAuth
// @Router /voice-agents [post]
func (h *VoiceAgentHandler) CreateVoiceAgent(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.CreateVoiceAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.CreateVoiceAgent(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// GetVoiceAgent handles GET /voice-agents/:id
// @Summary Get voice agent by ID
// @Tags voice-agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} service.VoiceAgentResponse
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Security BearerAuth
// @Router /voice-agents/{id} [get]
func (h *VoiceAgentHandler) GetVoiceAgent(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	agent, err := h.agentService.GetVoiceAgentByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// ListVoiceAgents handles GET /voice-agents
// @Summary List voice agents
// @Tags voice-agents
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.VoiceAgentListResponse
// @Security BearerAuth
// @Router /voice-agents [get]
func (h *VoiceAgentHandler) ListVoiceAgents(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	agents, err := h.agentService.GetVoiceAgents(tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// UpdateVoiceAgent handles PATCH /voice-agents/:id
// @Summary Update a voice agent
// @Tags voice-agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param agent body service.UpdateVoiceAgentRequest true "Agent data"
// @Success 200 {object} service.VoiceAgentResponse
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Security BearerAuth
// @Router /voice-agents/{id} [patch]
func (h *VoiceAgentHandler) UpdateVoiceAgent(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVoiceAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.UpdateVoiceAgent(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// DeleteVoiceAgent handles DELETE /voice-agents/:id
// @Summary Delete a voice agent
// @Tags voice-agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Success 204 "Agent deleted"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Security BearerAuth
// @Router /voice-agents/{id} [delete]
func (h *VoiceAgentHandler) DeleteVoiceAgent(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.agentService.DeleteVoiceAgent(tenantID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
