package handlers

import (
	"net/http"

	"estatevoice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversationHandler handles HTTP requests for conversations
type ConversationHandler struct {
	conversationService service.ConversationServiceInterface
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService service.ConversationServiceInterface) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// StartConversation handles POST /conversations
// @Summary Start a conversation
// @Description Open an active conversation for a voice agent, optionally linked to a lead
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversation body service.StartConversationRequest true "Conversation data"
// @Success 201 {object} service.ConversationResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /conversations [post]
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	var req service.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conversation, err := h.conversationService.StartConversation(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conversation)
}

// GetConversation handles GET /conversations/:id
// @Summary Get conversation by ID
// @Description Get a conversation including its recorded turns
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} service.ConversationResponse
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Security BearerAuth
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	conversation, err := h.conversationService.GetConversationByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

// ListConversations handles GET /conversations
// @Summary List conversations
// @Description Get tenant conversations, optionally filtered by lead
// @Tags conversations
// @Accept json
// @Produce json
// @Param lead_id query string false "Lead ID filter"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ConversationListResponse
// @Security BearerAuth
// @Router /conversations [get]
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	var leadID *uuid.UUID
	if raw := c.Query("lead_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead_id"})
			return
		}
		leadID = &parsed
	}

	conversations, err := h.conversationService.GetConversations(tenantID, leadID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// AppendTurn handles POST /conversations/:id/turns
// @Summary Append a turn
// @Description Record an utterance on an active conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param turn body service.AppendTurnRequest true "Turn data"
// @Success 201 {object} service.TurnResponse
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Failure 422 {object} ErrorResponse "Conversation not active"
// @Security BearerAuth
// @Router /conversations/{id}/turns [post]
func (h *ConversationHandler) AppendTurn(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AppendTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turn, err := h.conversationService.AppendTurn(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, turn)
}

// EndConversation handles POST /conversations/:id/end
// @Summary End a conversation
// @Description Close an active conversation as completed or abandoned
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param abandoned query bool false "Mark as abandoned" default(false)
// @Success 200 {object} service.ConversationResponse
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Failure 422 {object} ErrorResponse "Conversation not active"
// @Security BearerAuth
// @Router /conversations/{id}/end [post]
func (h *ConversationHandler) EndConversation(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	abandoned := c.Query("abandoned") == "true"
	conversation, err := h.conversationService.EndConversation(tenantID, id, abandoned)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}
