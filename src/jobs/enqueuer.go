package jobs

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hibiken/asynq"
)

// Enqueuer schedules signup confirmations. A nil client skips them.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) NotifySignup(ctx context.Context, activity, email string) error {
	if e == nil || e.client == nil {
		log.Warnw("⚠️ Redis not available, skip signup confirmation", "activity", activity, "email", email)
		return nil
	}

	task, err := NewSignupConfirmationTask(activity, email)
	if err != nil {
		return fmt.Errorf("build signup confirmation task: %w", err)
	}
	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue signup confirmation: %w", err)
	}
	log.Infow("📨 signup confirmation enqueued", "task_id", info.ID, "activity", activity, "email", email)
	return nil
}
