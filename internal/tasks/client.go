package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client enqueues background jobs onto the Redis-backed queue. It satisfies
// the TaskEnqueuer interface the services depend on.
type Client struct {
	client *asynq.Client
}

// NewClient constructs a task client from a redis:// URL
func NewClient(redisURL string) (*Client, error) {
	if redisURL == "" {
		return nil, errors.New("tasks: redis url is not set")
	}
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("tasks: parse redis url: %w", err)
	}
	return &Client{client: asynq.NewClient(opt)}, nil
}

// EnqueueMLSSync schedules an inventory pull for one tenant and area. The
// task is unique per payload for ten minutes to collapse duplicate requests.
func (c *Client) EnqueueMLSSync(tenantID uuid.UUID, area string) error {
	task, err := NewMLSSyncTask(tenantID, area)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task,
		asynq.Queue("sync"),
		asynq.MaxRetry(3),
		asynq.Unique(10*time.Minute),
	)
	return err
}

// EnqueueLeadFollowUp schedules the follow-up email for a qualified lead,
// delayed five minutes so a human pickup can preempt it. Unique for 24 hours
// so repeated re-qualification does not spam the lead.
func (c *Client) EnqueueLeadFollowUp(tenantID, leadID uuid.UUID) error {
	task, err := NewLeadFollowUpTask(tenantID, leadID)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task,
		asynq.ProcessIn(5*time.Minute),
		asynq.MaxRetry(5),
		asynq.Unique(24*time.Hour),
	)
	return err
}

// EnqueueConversationAnalytics schedules the post-call analytics recompute
func (c *Client) EnqueueConversationAnalytics(tenantID, conversationID uuid.UUID) error {
	task, err := NewConversationAnalyticsTask(tenantID, conversationID)
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, asynq.MaxRetry(3))
	return err
}

// Close releases the underlying Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}
