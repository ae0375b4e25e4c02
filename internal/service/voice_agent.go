package service

import (
	"fmt"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VoiceAgentService handles business logic for voice agent configurations
type VoiceAgentService struct {
	repo      repository.VoiceAgentRepositoryInterface
	validator *validator.Validate
}

// NewVoiceAgentService creates a new voice agent service
func NewVoiceAgentService(repo repository.VoiceAgentRepositoryInterface, validator *validator.Validate) *VoiceAgentService {
	return &VoiceAgentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVoiceAgentRequest represents the data needed to create a voice agent
type CreateVoiceAgentRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Greeting     string  `json:"greeting" validate:"required,max=500"`
	SystemPrompt string  `json:"system_prompt" validate:"required"`
	LLMModel     string  `json:"llm_model" validate:"max=50"`
	Temperature  float64 `json:"temperature" validate:"min=0,max=2"`
	TTSProvider  string  `json:"tts_provider" validate:"omitempty,oneof=elevenlabs cartesia"`
	VoiceID      string  `json:"voice_id" validate:"max=100"`
	Language     string  `json:"language" validate:"max=10"`
	IsDefault    bool    `json:"is_default"`
}

// UpdateVoiceAgentRequest represents the data needed to update a voice agent
type UpdateVoiceAgentRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=100"`
	Greeting     *string  `json:"greeting" validate:"omitempty,max=500"`
	SystemPrompt *string  `json:"system_prompt"`
	LLMModel     *string  `json:"llm_model" validate:"omitempty,max=50"`
	Temperature  *float64 `json:"temperature" validate:"omitempty,min=0,max=2"`
	TTSProvider  *string  `json:"tts_provider" validate:"omitempty,oneof=elevenlabs cartesia"`
	VoiceID      *string  `json:"voice_id" validate:"omitempty,max=100"`
	Language     *string  `json:"language" validate:"omitempty,max=10"`
	IsDefault    *bool    `json:"is_default"`
	Active       *bool    `json:"active"`
}

// VoiceAgentResponse represents the response data for a voice agent
type VoiceAgentResponse struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	Name         string    `json:"name"`
	Greeting     string    `json:"greeting"`
	SystemPrompt string    `json:"system_prompt"`
	LLMModel     string    `json:"llm_model"`
	Temperature  float64   `json:"temperature"`
	TTSProvider  string    `json:"tts_provider"`
	VoiceID      string    `json:"voice_id"`
	Language     string    `json:"language"`
	IsDefault    bool      `json:"is_default"`
	Active       bool      `json:"active"`
}

// VoiceAgentListResponse is the swagger schema for GET /voice/agents
type VoiceAgentListResponse struct {
	Agents []VoiceAgentResponse `json:"agents"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// CreateVoiceAgent creates a new voice agent within a tenant. When IsDefault
// is set, any existing default is cleared first.
func (s *VoiceAgentService) CreateVoiceAgent(tenantID uuid.UUID, req *CreateVoiceAgentRequest) (*VoiceAgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByName(tenantID, req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrVoiceAgentExists
	}

	if req.IsDefault {
		if err := s.repo.ClearDefault(tenantID); err != nil {
			return nil, fmt.Errorf("failed to clear default agent: %w", err)
		}
	}

	agent := &models.VoiceAgent{
		TenantID:     tenantID,
		Name:         req.Name,
		Greeting:     req.Greeting,
		SystemPrompt: req.SystemPrompt,
		LLMModel:     req.LLMModel,
		Temperature:  req.Temperature,
		VoiceID:      req.VoiceID,
		Language:     req.Language,
		IsDefault:    req.IsDefault,
		Active:       true,
	}
	if req.TTSProvider != "" {
		agent.TTSProvider = models.TTSProvider(req.TTSProvider)
	}

	if err := s.repo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create voice agent: %w", err)
	}
	return s.toResponse(agent), nil
}

// GetVoiceAgentByID retrieves a voice agent by ID within a tenant
func (s *VoiceAgentService) GetVoiceAgentByID(tenantID, id uuid.UUID) (*VoiceAgentResponse, error) {
	agent, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(agent), nil
}

// GetVoiceAgents retrieves all voice agents for a tenant with pagination
func (s *VoiceAgentService) GetVoiceAgents(tenantID uuid.UUID, limit, offset int) (*VoiceAgentListResponse, error) {
	agents, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice agents: %w", err)
	}

	responses := make([]VoiceAgentResponse, len(agents))
	for i := range agents {
		responses[i] = *s.toResponse(&agents[i])
	}
	return &VoiceAgentListResponse{
		Agents: responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// ResolveAgent returns the requested agent, or the tenant's default when no
// ID is given. Used when opening a live voice session.
func (s *VoiceAgentService) ResolveAgent(tenantID uuid.UUID, agentID *uuid.UUID) (*models.VoiceAgent, error) {
	if agentID != nil {
		return s.repo.GetByID(tenantID, *agentID)
	}
	agent, err := s.repo.GetDefault(tenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrNoDefaultVoiceAgent
		}
		return nil, err
	}
	return agent, nil
}

// UpdateVoiceAgent updates an existing voice agent
func (s *VoiceAgentService) UpdateVoiceAgent(tenantID, id uuid.UUID, req *UpdateVoiceAgentRequest) (*VoiceAgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault && !agent.IsDefault {
		if err := s.repo.ClearDefault(tenantID); err != nil {
			return nil, fmt.Errorf("failed to clear default agent: %w", err)
		}
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Greeting != nil {
		agent.Greeting = *req.Greeting
	}
	if req.SystemPrompt != nil {
		agent.SystemPrompt = *req.SystemPrompt
	}
	if req.LLMModel != nil {
		agent.LLMModel = *req.LLMModel
	}
	if req.Temperature != nil {
		agent.Temperature = *req.Temperature
	}
	if req.TTSProvider != nil {
		agent.TTSProvider = models.TTSProvider(*req.TTSProvider)
	}
	if req.VoiceID != nil {
		agent.VoiceID = *req.VoiceID
	}
	if req.Language != nil {
		agent.Language = *req.Language
	}
	if req.IsDefault != nil {
		agent.IsDefault = *req.IsDefault
	}
	if req.Active != nil {
		agent.Active = *req.Active
	}

	if err := s.repo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update voice agent: %w", err)
	}
	return s.toResponse(agent), nil
}

// DeleteVoiceAgent deletes a voice agent within a tenant
func (s *VoiceAgentService) DeleteVoiceAgent(tenantID, id uuid.UUID) error {
	return s.repo.Delete(tenantID, id)
}

func (s *VoiceAgentService) toResponse(agent *models.VoiceAgent) *VoiceAgentResponse {
	return &VoiceAgentResponse{
		ID:           agent.ID,
		TenantID:     agent.TenantID,
		Name:         agent.Name,
		Greeting:     agent.Greeting,
		SystemPrompt: agent.SystemPrompt,
		LLMModel:     agent.LLMModel,
		Temperature:  agent.Temperature,
		TTSProvider:  string(agent.TTSProvider),
		VoiceID:      agent.VoiceID,
		Language:     agent.Language,
		IsDefault:    agent.IsDefault,
		Active:       agent.Active,
	}
}
