package service

import (
	"context"
	"fmt"
	"strings"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/qualification"
	"estatevoice-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LeadService handles business logic for leads, including qualification
// scoring and downstream follow-up triggers
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	convRepo  repository.ConversationRepositoryInterface
	crm       CRMServiceInterface
	tasks     TaskEnqueuer
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	repo repository.LeadRepositoryInterface,
	convRepo repository.ConversationRepositoryInterface,
	crm CRMServiceInterface,
	tasks TaskEnqueuer,
	validator *validator.Validate,
	log *logrus.Logger,
) *LeadService {
	return &LeadService{
		repo:      repo,
		convRepo:  convRepo,
		crm:       crm,
		tasks:     tasks,
		validator: validator,
		logger:    log,
	}
}

// CreateLeadRequest represents the data needed to create a lead
type CreateLeadRequest struct {
	FullName       string `json:"full_name" validate:"required,max=100"`
	Email          string `json:"email" validate:"omitempty,email,max=100"`
	Phone          string `json:"phone" validate:"max=30"`
	Source         string `json:"source" validate:"omitempty,oneof=voice web import referral"`
	BudgetMin      int64  `json:"budget_min" validate:"min=0"`
	BudgetMax      int64  `json:"budget_max" validate:"min=0"`
	Timeline       string `json:"timeline" validate:"max=100"`
	PreferredAreas string `json:"preferred_areas" validate:"max=500"`
	Notes          string `json:"notes"`
}

// UpdateLeadRequest represents the data needed to update a lead
type UpdateLeadRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,email,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	Status         *string `json:"status" validate:"omitempty,oneof=new contacted qualified unqualified converted"`
	BudgetMin      *int64  `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax      *int64  `json:"budget_max" validate:"omitempty,min=0"`
	Timeline       *string `json:"timeline" validate:"omitempty,max=100"`
	PreferredAreas *string `json:"preferred_areas" validate:"omitempty,max=500"`
	Notes          *string `json:"notes"`
}

// QualifyLeadRequest carries an ad-hoc transcript to score. When empty, the
// transcript is assembled from the lead's recorded conversations.
type QualifyLeadRequest struct {
	Transcript string `json:"transcript"`
}

// LeadResponse represents the response data for a lead
type LeadResponse struct {
	ID                 uuid.UUID `json:"id"`
	TenantID           uuid.UUID `json:"tenant_id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Source             string    `json:"source"`
	Status             string    `json:"status"`
	QualificationScore int       `json:"qualification_score"`
	BudgetMin          int64     `json:"budget_min"`
	BudgetMax          int64     `json:"budget_max"`
	Timeline           string    `json:"timeline,omitempty"`
	PreferredAreas     string    `json:"preferred_areas,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}

// LeadListResponse is the swagger schema for GET /leads
type LeadListResponse struct {
	Leads  []LeadResponse `json:"leads"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// QualifyLeadResponse is the swagger schema for POST /leads/{id}/qualify
type QualifyLeadResponse struct {
	Lead      LeadResponse            `json:"lead"`
	Score     int                     `json:"score"`
	Qualified bool                    `json:"qualified"`
	Breakdown qualification.Breakdown `json:"breakdown"`
}

// CreateLead creates a new lead within a tenant
func (s *LeadService) CreateLead(tenantID uuid.UUID, req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.BudgetMax > 0 && req.BudgetMin > req.BudgetMax {
		return nil, apperrors.NewValidationError("budget_min", "cannot exceed budget_max")
	}

	source := models.LeadSourceWeb
	if req.Source != "" {
		source = models.LeadSource(req.Source)
	}

	lead := &models.Lead{
		TenantID:       tenantID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Source:         source,
		Status:         models.LeadStatusNew,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Timeline:       req.Timeline,
		PreferredAreas: req.PreferredAreas,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// GetLeadByID retrieves a lead by ID within a tenant
func (s *LeadService) GetLeadByID(tenantID, id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(lead), nil
}

// GetLeads retrieves leads for a tenant, optionally filtered by status
func (s *LeadService) GetLeads(tenantID uuid.UUID, status string, limit, offset int) (*LeadListResponse, error) {
	var (
		leads []models.Lead
		total int64
		err   error
	)
	if status != "" {
		leadStatus := models.LeadStatus(status)
		if !leadStatus.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("invalid lead status: %s", status))
		}
		leads, total, err = s.repo.GetByStatus(tenantID, leadStatus, limit, offset)
	} else {
		leads, total, err = s.repo.GetByTenantID(tenantID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = *s.toResponse(&leads[i])
	}
	return &LeadListResponse{
		Leads:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateLead updates an existing lead
func (s *LeadService) UpdateLead(tenantID, id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		lead.FullName = *req.FullName
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Status != nil {
		next := models.LeadStatus(*req.Status)
		if lead.Status == models.LeadStatusConverted && next != models.LeadStatusConverted {
			return nil, apperrors.ErrLeadAlreadyConverted
		}
		// Qualified is earned through scoring, not set by hand.
		if next == models.LeadStatusQualified && lead.Status != models.LeadStatusQualified &&
			lead.QualificationScore < qualification.QualifiedThreshold {
			return nil, apperrors.NewValidationError("status", "qualification score is below the threshold")
		}
		lead.Status = next
	}
	if req.BudgetMin != nil {
		lead.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		lead.BudgetMax = *req.BudgetMax
	}
	if req.Timeline != nil {
		lead.Timeline = *req.Timeline
	}
	if req.PreferredAreas != nil {
		lead.PreferredAreas = *req.PreferredAreas
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return s.toResponse(lead), nil
}

// DeleteLead deletes a lead within a tenant
func (s *LeadService) DeleteLead(tenantID, id uuid.UUID) error {
	return s.repo.Delete(tenantID, id)
}

// QualifyLead scores a lead's transcript and applies the result. When the
// request carries no transcript, the caller-side turns of the lead's
// conversations are assembled and scored instead.
func (s *LeadService) QualifyLead(ctx context.Context, tenantID, id uuid.UUID, req *QualifyLeadRequest) (*QualifyLeadResponse, error) {
	lead, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	transcript := req.Transcript
	if transcript == "" {
		transcript, err = s.assembleTranscript(tenantID, id)
		if err != nil {
			return nil, err
		}
	}
	if transcript == "" {
		return nil, apperrors.ErrNoTranscript
	}

	result := qualification.Score(transcript)
	if err := s.applyScore(ctx, lead, result); err != nil {
		return nil, err
	}

	return &QualifyLeadResponse{
		Lead:      *s.toResponse(lead),
		Score:     result.Score,
		Qualified: result.Qualified,
		Breakdown: result.Breakdown,
	}, nil
}

// ApplyScore persists a scoring result against a lead and triggers the
// qualification side effects. Used by the live voice session after each
// caller turn.
func (s *LeadService) ApplyScore(ctx context.Context, tenantID, id uuid.UUID, result qualification.Result) error {
	lead, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	return s.applyScore(ctx, lead, result)
}

func (s *LeadService) applyScore(ctx context.Context, lead *models.Lead, result qualification.Result) error {
	wasQualified := lead.Status == models.LeadStatusQualified || lead.Status == models.LeadStatusConverted
	lead.QualificationScore = result.Score

	if result.Qualified && !wasQualified {
		lead.Status = models.LeadStatusQualified
	}

	if err := s.repo.Update(lead); err != nil {
		return fmt.Errorf("failed to update lead score: %w", err)
	}

	// Side effects fire only on the first transition into qualified.
	if result.Qualified && !wasQualified {
		s.onQualified(ctx, lead)
	}
	return nil
}

// onQualified pushes the lead to the CRM and schedules the follow-up email.
// Both are best-effort: a CRM or queue outage must not fail the scoring path.
func (s *LeadService) onQualified(ctx context.Context, lead *models.Lead) {
	log := s.logger.WithFields(logrus.Fields{
		"lead_id":   lead.ID,
		"tenant_id": lead.TenantID,
		"score":     lead.QualificationScore,
	})
	log.Info("Lead qualified")

	if s.crm != nil && s.crm.Configured() {
		if crmID, err := s.crm.PushLead(ctx, lead); err != nil {
			log.Warnf("CRM push failed: %v", err)
		} else {
			log.WithField("crm_id", crmID).Info("Lead pushed to CRM")
		}
	}

	if s.tasks != nil {
		if err := s.tasks.EnqueueLeadFollowUp(lead.TenantID, lead.ID); err != nil {
			log.Warnf("Failed to enqueue follow-up: %v", err)
		}
	}
}

// ConvertLead marks a qualified lead as converted
func (s *LeadService) ConvertLead(tenantID, id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if lead.Status == models.LeadStatusConverted {
		return nil, apperrors.ErrLeadAlreadyConverted
	}

	lead.Status = models.LeadStatusConverted
	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to convert lead: %w", err)
	}
	return s.toResponse(lead), nil
}

// assembleTranscript concatenates the caller-side turns across all of the
// lead's conversations, oldest first.
func (s *LeadService) assembleTranscript(tenantID, leadID uuid.UUID) (string, error) {
	conversations, _, err := s.convRepo.GetByLeadID(tenantID, leadID, 100, 0)
	if err != nil {
		return "", fmt.Errorf("failed to load conversations: %w", err)
	}

	var sb strings.Builder
	// Conversations arrive newest first; walk them in reverse so the
	// transcript reads in the order the calls happened.
	for i := len(conversations) - 1; i >= 0; i-- {
		turns, err := s.convRepo.GetTurns(conversations[i].ID)
		if err != nil {
			return "", fmt.Errorf("failed to load turns: %w", err)
		}
		for _, turn := range turns {
			if turn.Role != models.TurnRoleCaller {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(turn.Content)
		}
	}
	return sb.String(), nil
}

func (s *LeadService) toResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:                 lead.ID,
		TenantID:           lead.TenantID,
		FullName:           lead.FullName,
		Email:              lead.Email,
		Phone:              lead.Phone,
		Source:             string(lead.Source),
		Status:             string(lead.Status),
		QualificationScore: lead.QualificationScore,
		BudgetMin:          lead.BudgetMin,
		BudgetMax:          lead.BudgetMax,
		Timeline:           lead.Timeline,
		PreferredAreas:     lead.PreferredAreas,
		Notes:              lead.Notes,
	}
}
