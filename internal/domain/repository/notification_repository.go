package repository

import "github.com/iamonjarvis/anywork-backend/internal/domain/entity"

// NotificationRepository persists per-user notifications written by the
// notify worker.
type NotificationRepository interface {
	Insert(n *entity.Notification) error
	FindByUser(userID string) ([]entity.Notification, error)
}
