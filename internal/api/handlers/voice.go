package handlers

import (
	"net/http"

	"estatevoice-backend/internal/realtime"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/voice/tts"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin is enforced by the CORS middleware on the upgrade request.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// VoiceHandler handles TTS synthesis and the live voice WebSocket
type VoiceHandler struct {
	ttsProvider   tts.Provider
	hub           *realtime.Hub
	agents        service.VoiceAgentServiceInterface
	conversations service.ConversationServiceInterface
	leads         service.LeadServiceInterface
	assistant     service.AssistantServiceInterface
	logger        *logrus.Logger
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(
	ttsProvider tts.Provider,
	hub *realtime.Hub,
	agents service.VoiceAgentServiceInterface,
	conversations service.ConversationServiceInterface,
	leads service.LeadServiceInterface,
	assistant service.AssistantServiceInterface,
	log *logrus.Logger,
) *VoiceHandler {
	return &VoiceHandler{
		ttsProvider:   ttsProvider,
		hub:           hub,
		agents:        agents,
		conversations: conversations,
		leads:         leads,
		assistant:     assistant,
		logger:        log,
	}
}

// SynthesizeRequest is the payload for POST /voice/synthesize
type SynthesizeRequest struct {
	Text     string  `json:"text" binding:"required"`
	Voice    string  `json:"voice"`
	Language string  `json:"language"`
	Speed    float64 `json:"speed"`
	Format   string  `json:"format"` // mp3 or pcm
}

// Synthesize handles POST /voice/synthesize
// @Summary Synthesize speech
// @Description Convert text to audio using the configured TTS providers with failover
// @Tags voice
// @Accept json
// @Produce octet-stream
// @Param request body SynthesizeRequest true "Text to synthesize"
// @Success 200 {file} binary "Audio data"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "All TTS providers failed"
// @Security BearerAuth
// @Router /voice/synthesize [post]
func (h *VoiceHandler) Synthesize(c *gin.Context) {
	if _, ok := tenantFromContext(c); !ok {
		return
	}

	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	synthesis, err := h.ttsProvider.Synthesize(c.Request.Context(), req.Text, tts.SynthesizeOptions{
		Voice:    req.Voice,
		Language: req.Language,
		Speed:    req.Speed,
		Format:   req.Format,
	})
	if err != nil {
		h.logger.Errorf("TTS synthesis failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis failed"})
		return
	}

	contentType := "audio/mpeg"
	if synthesis.Format == "pcm" {
		contentType = "audio/pcm"
	}
	c.Data(http.StatusOK, contentType, synthesis.Audio)
}

// Stream handles GET /voice/stream
// @Summary Open a live voice session
// @Description Upgrade to a WebSocket carrying the live conversation protocol
// @Tags voice
// @Success 101 "Switching protocols"
// @Failure 401 {object} ErrorResponse "Missing tenant context"
// @Security BearerAuth
// @Router /voice/stream [get]
func (h *VoiceHandler) Stream(c *gin.Context) {
	tenantID, ok := tenantFromContext(c)
	if !ok {
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	conn := realtime.NewConnection(tenantID, ws)
	conn.Start()
	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	session := realtime.NewSession(conn, tenantID, h.agents, h.conversations, h.leads, h.assistant, h.ttsProvider, h.logger)
	session.Run(c.Request.Context())
}
