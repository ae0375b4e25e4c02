// Package tasks defines the background jobs processed by the asynq worker:
// MLS inventory pulls, lead follow-up email and post-call conversation
// analytics.
package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeMLSSync               = "mls:sync"
	TypeLeadFollowUp          = "lead:follow_up"
	TypeConversationAnalytics = "conversation:analytics"
)

// MLSSyncPayload carries an inventory pull request for one tenant and area
type MLSSyncPayload struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Area     string    `json:"area"`
}

// LeadFollowUpPayload identifies the qualified lead to email
type LeadFollowUpPayload struct {
	TenantID uuid.UUID `json:"tenant_id"`
	LeadID   uuid.UUID `json:"lead_id"`
}

// ConversationAnalyticsPayload identifies the ended conversation to recompute
type ConversationAnalyticsPayload struct {
	TenantID       uuid.UUID `json:"tenant_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
}

// NewMLSSyncTask builds the mls:sync task
func NewMLSSyncTask(tenantID uuid.UUID, area string) (*asynq.Task, error) {
	payload, err := json.Marshal(MLSSyncPayload{TenantID: tenantID, Area: area})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mls sync payload: %w", err)
	}
	return asynq.NewTask(TypeMLSSync, payload), nil
}

// NewLeadFollowUpTask builds the lead:follow_up task
func NewLeadFollowUpTask(tenantID, leadID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(LeadFollowUpPayload{TenantID: tenantID, LeadID: leadID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal follow-up payload: %w", err)
	}
	return asynq.NewTask(TypeLeadFollowUp, payload), nil
}

// NewConversationAnalyticsTask builds the conversation:analytics task
func NewConversationAnalyticsTask(tenantID, conversationID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ConversationAnalyticsPayload{TenantID: tenantID, ConversationID: conversationID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analytics payload: %w", err)
	}
	return asynq.NewTask(TypeConversationAnalytics, payload), nil
}
