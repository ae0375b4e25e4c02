package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"estatevoice-backend/internal/repository"
	"estatevoice-backend/internal/service"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// Handlers processes dequeued tasks against the domain services
type Handlers struct {
	properties    service.PropertyServiceInterface
	conversations service.ConversationServiceInterface
	market        service.MarketServiceInterface
	mailer        service.MailerServiceInterface
	leadRepo      repository.LeadRepositoryInterface
	tenantRepo    repository.TenantRepositoryInterface
	logger        *logrus.Logger
}

// NewHandlers creates the task handler set
func NewHandlers(
	properties service.PropertyServiceInterface,
	conversations service.ConversationServiceInterface,
	market service.MarketServiceInterface,
	mailer service.MailerServiceInterface,
	leadRepo repository.LeadRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	log *logrus.Logger,
) *Handlers {
	return &Handlers{
		properties:    properties,
		conversations: conversations,
		market:        market,
		mailer:        mailer,
		leadRepo:      leadRepo,
		tenantRepo:    tenantRepo,
		logger:        log,
	}
}

// HandleMLSSync pulls listings for an area, upserts them and records a fresh
// market snapshot so insights reflect the sync.
func (h *Handlers) HandleMLSSync(ctx context.Context, t *asynq.Task) error {
	var payload MLSSyncPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal mls sync payload: %w", err)
	}

	result, err := h.properties.SyncFromMLS(ctx, payload.TenantID, payload.Area)
	if err != nil {
		return fmt.Errorf("mls sync failed for %s: %w", payload.Area, err)
	}

	if _, err := h.market.Refresh(ctx, payload.TenantID, payload.Area); err != nil {
		return fmt.Errorf("market refresh failed for %s: %w", payload.Area, err)
	}

	h.logger.WithFields(logrus.Fields{
		"tenant_id": payload.TenantID,
		"area":      payload.Area,
		"upserted":  result.Upserted,
	}).Info("MLS sync task completed")
	return nil
}

// HandleLeadFollowUp sends the qualification follow-up email
func (h *Handlers) HandleLeadFollowUp(ctx context.Context, t *asynq.Task) error {
	var payload LeadFollowUpPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal follow-up payload: %w", err)
	}

	lead, err := h.leadRepo.GetByID(payload.TenantID, payload.LeadID)
	if err != nil {
		return fmt.Errorf("failed to load lead: %w", err)
	}
	tenant, err := h.tenantRepo.GetByID(payload.TenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant: %w", err)
	}

	if err := h.mailer.SendLeadFollowUp(lead, tenant); err != nil {
		return fmt.Errorf("failed to send follow-up: %w", err)
	}

	h.logger.WithFields(logrus.Fields{
		"tenant_id": payload.TenantID,
		"lead_id":   payload.LeadID,
	}).Info("Follow-up email sent")
	return nil
}

// HandleConversationAnalytics recomputes bookkeeping for an ended conversation
func (h *Handlers) HandleConversationAnalytics(ctx context.Context, t *asynq.Task) error {
	var payload ConversationAnalyticsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal analytics payload: %w", err)
	}
	return h.conversations.RecomputeAnalytics(payload.TenantID, payload.ConversationID)
}

// Server runs the asynq worker that processes background jobs
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewServer constructs the worker. The sync queue gets a dedicated weight so
// bulk MLS pulls cannot starve follow-up email and analytics.
func NewServer(redisURL string, handlers *Handlers, log *logrus.Logger) (*Server, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("tasks: parse redis url: %w", err)
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 3,
			"sync":    1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.WithField("task_type", task.Type()).Errorf("Task failed: %v", err)
		}),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMLSSync, handlers.HandleMLSSync)
	mux.HandleFunc(TypeLeadFollowUp, handlers.HandleLeadFollowUp)
	mux.HandleFunc(TypeConversationAnalytics, handlers.HandleConversationAnalytics)

	return &Server{server: srv, mux: mux}, nil
}

// Run starts the worker and blocks until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	s.server.Shutdown()
	return nil
}
