package repository

import "github.com/iamonjarvis/anywork-backend/internal/domain/entity"

// MessageRepository persists chat messages. Messages are append-only.
type MessageRepository interface {
	Insert(m *entity.Message) error
	// FindBetween returns messages exchanged in either direction between the
	// two users, oldest first.
	FindBetween(a, b string) ([]entity.Message, error)
	// FindByJob returns messages for a job room, newest first.
	FindByJob(jobID string) ([]entity.Message, error)
}
