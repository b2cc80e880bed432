package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

// NotificationEvent is the queue payload consumed by the notify worker.
type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Notifier publishes notification events for asynchronous persistence.
type Notifier interface {
	Notify(ctx context.Context, ev NotificationEvent)
}

// QueueNotifier publishes events to RabbitMQ. Publishing is best-effort: a
// broker failure is logged and the triggering request still succeeds.
type QueueNotifier struct {
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewQueueNotifier(pub *helpers.RabbitPublisher, logger *logrus.Logger) *QueueNotifier {
	return &QueueNotifier{Pub: pub, Logger: logger}
}

func (n *QueueNotifier) Notify(ctx context.Context, ev NotificationEvent) {
	if n == nil || n.Pub == nil {
		return
	}
	if err := n.Pub.PublishJSON(ctx, ev); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithFields(logrus.Fields{
			"user_id": ev.UserID,
			"type":    ev.Type,
		}).Error("notification publish failed")
	}
}

var _ Notifier = (*QueueNotifier)(nil)
