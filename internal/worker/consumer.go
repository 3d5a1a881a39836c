package worker

import (
	"context"
	"encoding/json"

	"github.com/dumo-express/internal/logger"
	"github.com/dumo-express/internal/provider"
	"github.com/dumo-express/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued alert tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task types to their handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskBookingNotify, c.handleOperatorNotify)
	mux.HandleFunc(queue.TaskContactNotify, c.handleOperatorNotify)
}

func (c *Consumer) handleOperatorNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OperatorNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_notify_unmarshal_failed", "task", task.Type(), "error", err)
		return err
	}
	if payload.Title == "" && payload.Content == "" {
		logger.Debugw("worker_notify_skip_empty_payload", "task", task.Type())
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_notify_skip_notifier_nil", "task", task.Type())
		return nil
	}
	if err := c.NotificationService.DeliverOperatorAlert(payload.Title, payload.Content); err != nil {
		logger.Warnw("worker_notify_send_failed",
			"task", task.Type(),
			"title", payload.Title,
			"error", err,
		)
		return err
	}
	return nil
}
