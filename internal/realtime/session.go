package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"estatevoice-backend/internal/database/models"
	"estatevoice-backend/internal/qualification"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/voice/tts"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Session drives one live voice conversation over a websocket. Inbound
// caller text becomes a recorded turn; each turn streams the agent reply as
// turn.delta frames, then binary TTS audio, then turn.complete, and finally
// a score.update computed over the caller-side transcript so far.
type Session struct {
	conn          *Connection
	tenantID      uuid.UUID
	agents        service.VoiceAgentServiceInterface
	conversations service.ConversationServiceInterface
	leads         service.LeadServiceInterface
	assistant     service.AssistantServiceInterface
	tts           tts.Provider
	logger        *logrus.Logger

	agent          *models.VoiceAgent
	conversationID uuid.UUID
	leadID         *uuid.UUID
	audioEnabled   bool
	sequence       int
}

// NewSession creates a session bound to an upgraded connection
func NewSession(
	conn *Connection,
	tenantID uuid.UUID,
	agents service.VoiceAgentServiceInterface,
	conversations service.ConversationServiceInterface,
	leads service.LeadServiceInterface,
	assistant service.AssistantServiceInterface,
	ttsProvider tts.Provider,
	log *logrus.Logger,
) *Session {
	return &Session{
		conn:          conn,
		tenantID:      tenantID,
		agents:        agents,
		conversations: conversations,
		leads:         leads,
		assistant:     assistant,
		tts:           ttsProvider,
		logger:        log,
	}
}

// Run processes inbound frames until the client disconnects or ends the
// session. It blocks; the connection's write loop runs concurrently.
func (s *Session) Run(ctx context.Context) {
	defer s.teardown()

	for {
		msgType, payload, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			// Inbound audio is out of scope; callers send transcribed text.
			continue
		}

		var frame ClientFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			s.sendError("malformed frame")
			continue
		}

		switch frame.Type {
		case EventSessionStart:
			if err := s.handleStart(ctx, &frame); err != nil {
				s.sendError(err.Error())
				return
			}
		case EventUserText:
			if err := s.handleUserText(ctx, &frame); err != nil {
				s.sendError(err.Error())
			}
		case EventSessionEnd:
			s.handleEnd(frame.Abandoned)
			return
		default:
			s.sendError(fmt.Sprintf("unknown frame type: %s", frame.Type))
		}
	}
}

func (s *Session) handleStart(ctx context.Context, frame *ClientFrame) error {
	if s.started() {
		return fmt.Errorf("session already started")
	}

	agent, err := s.agents.ResolveAgent(s.tenantID, frame.AgentID)
	if err != nil {
		return err
	}
	if !agent.Active {
		return fmt.Errorf("voice agent is inactive")
	}
	s.agent = agent
	s.leadID = frame.LeadID
	s.audioEnabled = !frame.DisableAudio

	conversation, err := s.conversations.StartConversation(s.tenantID, &service.StartConversationRequest{
		LeadID:       frame.LeadID,
		VoiceAgentID: agent.ID,
		Channel:      string(models.ConversationChannelVoice),
	})
	if err != nil {
		return err
	}
	s.conversationID = conversation.ID

	s.sendFrame(ServerFrame{
		Type:           EventSessionReady,
		ConversationID: &s.conversationID,
		AgentID:        &agent.ID,
		Text:           agent.Greeting,
	})

	// The greeting is the agent's first recorded turn.
	if agent.Greeting != "" {
		if _, err := s.conversations.AppendTurn(s.tenantID, s.conversationID, &service.AppendTurnRequest{
			Role:    string(models.TurnRoleAgent),
			Content: agent.Greeting,
		}); err != nil {
			return err
		}
		s.sequence++
		s.streamAudio(ctx, agent.Greeting)
	}
	return nil
}

func (s *Session) handleUserText(ctx context.Context, frame *ClientFrame) error {
	if !s.started() {
		return fmt.Errorf("session not started")
	}
	if frame.Text == "" {
		return fmt.Errorf("empty user text")
	}

	// History is captured before the new turn so it is not duplicated in
	// the prompt.
	history, err := s.conversations.History(s.tenantID, s.conversationID)
	if err != nil {
		return err
	}

	if _, err := s.conversations.AppendTurn(s.tenantID, s.conversationID, &service.AppendTurnRequest{
		Role:       string(models.TurnRoleCaller),
		Content:    frame.Text,
		DurationMs: frame.DurationMs,
	}); err != nil {
		return err
	}
	s.sequence++

	reply, err := s.assistant.StreamReply(ctx, s.agent, history, frame.Text, func(delta string) error {
		return s.conn.SendJSON(marshalFrame(ServerFrame{
			Type:           EventTurnDelta,
			ConversationID: &s.conversationID,
			Text:           delta,
		}))
	})
	if err != nil {
		return err
	}

	if _, err := s.conversations.AppendTurn(s.tenantID, s.conversationID, &service.AppendTurnRequest{
		Role:    string(models.TurnRoleAgent),
		Content: reply,
	}); err != nil {
		return err
	}
	s.sequence++

	s.streamAudio(ctx, reply)

	s.sendFrame(ServerFrame{
		Type:           EventTurnComplete,
		ConversationID: &s.conversationID,
		Text:           reply,
		Sequence:       s.sequence,
	})

	s.updateScore(ctx)
	return nil
}

// updateScore rescores the caller transcript after each caller turn. Scoring
// failures are logged, never surfaced to the caller mid-conversation.
func (s *Session) updateScore(ctx context.Context) {
	transcript, err := s.conversations.CallerTranscript(s.tenantID, s.conversationID)
	if err != nil {
		s.logger.Warnf("Failed to load transcript for scoring: %v", err)
		return
	}
	if transcript == "" {
		return
	}

	result := qualification.Score(transcript)
	if err := s.conversations.RecordScore(s.tenantID, s.conversationID, result.Score); err != nil {
		s.logger.Warnf("Failed to record conversation score: %v", err)
	}
	if s.leadID != nil {
		if err := s.leads.ApplyScore(ctx, s.tenantID, *s.leadID, result); err != nil {
			s.logger.Warnf("Failed to apply lead score: %v", err)
		}
	}

	s.sendFrame(ServerFrame{
		Type:           EventScoreUpdate,
		ConversationID: &s.conversationID,
		Score:          result.Score,
		Qualified:      result.Qualified,
	})
}

// streamAudio synthesizes the reply and forwards audio chunks as binary
// frames. TTS failure degrades the session to text-only.
func (s *Session) streamAudio(ctx context.Context, text string) {
	if !s.audioEnabled || s.tts == nil || text == "" {
		return
	}

	opts := tts.SynthesizeOptions{
		Voice:    s.agent.VoiceID,
		Language: s.agent.Language,
	}
	stream, err := s.tts.SynthesizeStream(ctx, text, opts)
	if err != nil {
		s.logger.Warnf("TTS synthesis failed, continuing text-only: %v", err)
		return
	}
	defer stream.Close()

	for chunk := range stream.Chunks() {
		if err := s.conn.SendBinary(chunk); err != nil {
			return
		}
	}
	if err := stream.Err(); err != nil {
		s.logger.Warnf("TTS stream ended with error: %v", err)
	}
}

func (s *Session) handleEnd(abandoned bool) {
	if !s.started() {
		return
	}
	if _, err := s.conversations.EndConversation(s.tenantID, s.conversationID, abandoned); err != nil {
		s.logger.Warnf("Failed to end conversation: %v", err)
	}
	s.conn.Close(websocket.CloseNormalClosure, "session ended")
}

// teardown marks a still-active conversation abandoned when the socket drops
// without a session.end frame.
func (s *Session) teardown() {
	if s.started() && !s.conn.Closed() {
		if _, err := s.conversations.EndConversation(s.tenantID, s.conversationID, true); err != nil {
			s.logger.Debugf("Teardown end conversation: %v", err)
		}
	}
	s.conn.Close(websocket.CloseNormalClosure, "session closed")
}

func (s *Session) started() bool {
	return s.conversationID != uuid.Nil
}

func (s *Session) sendFrame(frame ServerFrame) {
	if err := s.conn.SendJSON(marshalFrame(frame)); err != nil {
		s.logger.Debugf("Failed to send frame: %v", err)
	}
}

func (s *Session) sendError(message string) {
	s.sendFrame(ServerFrame{Type: EventError, Error: message})
}
