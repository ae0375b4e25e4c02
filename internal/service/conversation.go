package service

import (
	"fmt"
	"strings"
	"time"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/qualification"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ConversationService handles conversation lifecycle and per-turn bookkeeping
type ConversationService struct {
	repo      repository.ConversationRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	tasks     TaskEnqueuer
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(
	repo repository.ConversationRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	tasks TaskEnqueuer,
	validator *validator.Validate,
	log *logrus.Logger,
) *ConversationService {
	return &ConversationService{
		repo:      repo,
		leadRepo:  leadRepo,
		tasks:     tasks,
		validator: validator,
		logger:    log,
	}
}

// StartConversationRequest represents the data needed to open a conversation
type StartConversationRequest struct {
	LeadID       *uuid.UUID `json:"lead_id"`
	VoiceAgentID uuid.UUID  `json:"voice_agent_id" validate:"required"`
	Channel      string     `json:"channel" validate:"omitempty,oneof=voice text"`
}

// AppendTurnRequest represents a single utterance to record
type AppendTurnRequest struct {
	Role       string `json:"role" validate:"required,oneof=agent caller"`
	Content    string `json:"content" validate:"required"`
	DurationMs int64  `json:"duration_ms" validate:"min=0"`
}

// ConversationResponse represents the response data for a conversation
type ConversationResponse struct {
	ID                uuid.UUID      `json:"id"`
	TenantID          uuid.UUID      `json:"tenant_id"`
	LeadID            *uuid.UUID     `json:"lead_id,omitempty"`
	VoiceAgentID      uuid.UUID      `json:"voice_agent_id"`
	Channel           string         `json:"channel"`
	Status            string         `json:"status"`
	StartedAt         time.Time      `json:"started_at"`
	EndedAt           *time.Time     `json:"ended_at,omitempty"`
	TurnCount         int            `json:"turn_count"`
	AvgTurnDurationMs int64          `json:"avg_turn_duration_ms"`
	LastScore         int            `json:"last_score"`
	Turns             []TurnResponse `json:"turns,omitempty"`
}

// TurnResponse represents a single recorded turn
type TurnResponse struct {
	ID         uuid.UUID `json:"id"`
	Sequence   int       `json:"sequence"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// ConversationListResponse is the swagger schema for GET /conversations
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// StartConversation opens a new active conversation
func (s *ConversationService) StartConversation(tenantID uuid.UUID, req *StartConversationRequest) (*ConversationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.LeadID != nil {
		if _, err := s.leadRepo.GetByID(tenantID, *req.LeadID); err != nil {
			return nil, err
		}
	}

	channel := models.ConversationChannelVoice
	if req.Channel != "" {
		channel = models.ConversationChannel(req.Channel)
	}

	conversation := &models.Conversation{
		TenantID:     tenantID,
		LeadID:       req.LeadID,
		VoiceAgentID: req.VoiceAgentID,
		Channel:      channel,
		Status:       models.ConversationStatusActive,
		StartedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(conversation); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return s.toResponse(conversation, nil), nil
}

// GetConversationByID retrieves a conversation with its turns
func (s *ConversationService) GetConversationByID(tenantID, id uuid.UUID) (*ConversationResponse, error) {
	conversation, err := s.repo.GetWithTurns(tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(conversation, conversation.Turns), nil
}

// GetConversations retrieves conversations for a tenant, optionally filtered
// by lead
func (s *ConversationService) GetConversations(tenantID uuid.UUID, leadID *uuid.UUID, limit, offset int) (*ConversationListResponse, error) {
	var (
		conversations []models.Conversation
		total         int64
		err           error
	)
	if leadID != nil {
		conversations, total, err = s.repo.GetByLeadID(tenantID, *leadID, limit, offset)
	} else {
		conversations, total, err = s.repo.GetByTenantID(tenantID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	responses := make([]ConversationResponse, len(conversations))
	for i := range conversations {
		responses[i] = *s.toResponse(&conversations[i], nil)
	}
	return &ConversationListResponse{
		Conversations: responses,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// AppendTurn records a turn on an active conversation and updates the
// running bookkeeping: turn count and average turn duration. The sequence
// number is assigned from the conversation's current maximum.
func (s *ConversationService) AppendTurn(tenantID, conversationID uuid.UUID, req *AppendTurnRequest) (*TurnResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	conversation, err := s.repo.GetByID(tenantID, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.Status != models.ConversationStatusActive {
		return nil, apperrors.ErrConversationNotActive
	}

	sequence, err := s.repo.NextSequence(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign turn sequence: %w", err)
	}

	turn := &models.ConversationTurn{
		ConversationID: conversationID,
		Sequence:       sequence,
		Role:           models.TurnRole(req.Role),
		Content:        req.Content,
		StartedAt:      time.Now().UTC(),
		DurationMs:     req.DurationMs,
	}
	if err := s.repo.AppendTurn(turn); err != nil {
		return nil, fmt.Errorf("failed to append turn: %w", err)
	}

	// Agent turns carry no spoken duration, so the running average
	// tracks caller turns only: (avg*n + d) / (n+1).
	conversation.TurnCount++
	if turn.Role == models.TurnRoleCaller {
		prevCount := int64(conversation.CallerTurnCount)
		conversation.AvgTurnDurationMs = (conversation.AvgTurnDurationMs*prevCount + req.DurationMs) / (prevCount + 1)
		conversation.CallerTurnCount++
	}
	if err := s.repo.Update(conversation); err != nil {
		return nil, fmt.Errorf("failed to update conversation bookkeeping: %w", err)
	}

	return s.toTurnResponse(turn), nil
}

// RecordScore stores the latest qualification score on the conversation
func (s *ConversationService) RecordScore(tenantID, conversationID uuid.UUID, score int) error {
	conversation, err := s.repo.GetByID(tenantID, conversationID)
	if err != nil {
		return err
	}
	conversation.LastScore = score
	if err := s.repo.Update(conversation); err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	return nil
}

// EndConversation closes an active conversation as completed or abandoned
// and schedules the analytics job.
func (s *ConversationService) EndConversation(tenantID, id uuid.UUID, abandoned bool) (*ConversationResponse, error) {
	conversation, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if conversation.Status != models.ConversationStatusActive {
		return nil, apperrors.ErrConversationNotActive
	}

	now := time.Now().UTC()
	conversation.EndedAt = &now
	if abandoned {
		conversation.Status = models.ConversationStatusAbandoned
	} else {
		conversation.Status = models.ConversationStatusCompleted
	}

	if err := s.repo.Update(conversation); err != nil {
		return nil, fmt.Errorf("failed to end conversation: %w", err)
	}

	if s.tasks != nil {
		if err := s.tasks.EnqueueConversationAnalytics(tenantID, id); err != nil {
			s.logger.WithField("conversation_id", id).Warnf("Failed to enqueue analytics: %v", err)
		}
	}
	return s.toResponse(conversation, nil), nil
}

// CallerTranscript assembles the caller-side transcript of one conversation,
// in turn order. It is the input to qualification scoring.
func (s *ConversationService) CallerTranscript(tenantID, id uuid.UUID) (string, error) {
	conversation, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return "", err
	}

	turns, err := s.repo.GetTurns(conversation.ID)
	if err != nil {
		return "", fmt.Errorf("failed to load turns: %w", err)
	}

	var sb strings.Builder
	for _, turn := range turns {
		if turn.Role != models.TurnRoleCaller {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(turn.Content)
	}
	return sb.String(), nil
}

// History returns the conversation's turns as chat messages, oldest first,
// for prompting the assistant.
func (s *ConversationService) History(tenantID, id uuid.UUID) ([]ChatMessage, error) {
	conversation, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	turns, err := s.repo.GetTurns(conversation.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load turns: %w", err)
	}

	messages := make([]ChatMessage, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == models.TurnRoleAgent {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: turn.Content})
	}
	return messages, nil
}

// RecomputeAnalytics rebuilds the bookkeeping fields of a conversation from
// its stored turns. Run by the background worker after a conversation ends,
// it also refreshes LastScore from the full caller transcript.
func (s *ConversationService) RecomputeAnalytics(tenantID, id uuid.UUID) error {
	conversation, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}

	turns, err := s.repo.GetTurns(conversation.ID)
	if err != nil {
		return fmt.Errorf("failed to load turns: %w", err)
	}

	var callerDuration int64
	var callerTurns int
	var transcript strings.Builder
	for _, turn := range turns {
		if turn.Role != models.TurnRoleCaller {
			continue
		}
		callerDuration += turn.DurationMs
		callerTurns++
		if transcript.Len() > 0 {
			transcript.WriteString("\n")
		}
		transcript.WriteString(turn.Content)
	}

	conversation.TurnCount = len(turns)
	conversation.CallerTurnCount = callerTurns
	if callerTurns > 0 {
		conversation.AvgTurnDurationMs = callerDuration / int64(callerTurns)
	} else {
		conversation.AvgTurnDurationMs = 0
	}
	if transcript.Len() > 0 {
		conversation.LastScore = qualification.Score(transcript.String()).Score
	}

	if err := s.repo.Update(conversation); err != nil {
		return fmt.Errorf("failed to update analytics: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"conversation_id": id,
		"turn_count":      conversation.TurnCount,
		"last_score":      conversation.LastScore,
	}).Info("Conversation analytics recomputed")
	return nil
}

func (s *ConversationService) toResponse(conversation *models.Conversation, turns []models.ConversationTurn) *ConversationResponse {
	resp := &ConversationResponse{
		ID:                conversation.ID,
		TenantID:          conversation.TenantID,
		LeadID:            conversation.LeadID,
		VoiceAgentID:      conversation.VoiceAgentID,
		Channel:           string(conversation.Channel),
		Status:            string(conversation.Status),
		StartedAt:         conversation.StartedAt,
		EndedAt:           conversation.EndedAt,
		TurnCount:         conversation.TurnCount,
		AvgTurnDurationMs: conversation.AvgTurnDurationMs,
		LastScore:         conversation.LastScore,
	}
	for i := range turns {
		resp.Turns = append(resp.Turns, *s.toTurnResponse(&turns[i]))
	}
	return resp
}

func (s *ConversationService) toTurnResponse(turn *models.ConversationTurn) *TurnResponse {
	return &TurnResponse{
		ID:         turn.ID,
		Sequence:   turn.Sequence,
		Role:       string(turn.Role),
		Content:    turn.Content,
		StartedAt:  turn.StartedAt,
		DurationMs: turn.DurationMs,
	}
}
