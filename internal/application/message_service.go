package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/internal/realtime"
)

var ErrInvalidMessage = errors.New("invalid message")

// MessageService persists chat messages and broadcasts them over the bus.
// The persistence write and the broadcast are sequential but not atomic.
type MessageService struct {
	Messages repository.MessageRepository
	Bus      realtime.Bus
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewMessageService(messages repository.MessageRepository, bus realtime.Bus, notifier Notifier, logger *logrus.Logger) *MessageService {
	return &MessageService{Messages: messages, Bus: bus, Notifier: notifier, Logger: logger}
}

// Send persists the message, then broadcasts it: to the job room when a job
// id is given, to the global channel otherwise.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, jobID, content string) (*entity.Message, error) {
	sid, err := bson.ObjectIDFromHex(senderID)
	if err != nil {
		return nil, ErrInvalidMessage
	}
	rid, err := bson.ObjectIDFromHex(receiverID)
	if err != nil {
		return nil, ErrInvalidMessage
	}
	msg := &entity.Message{SenderID: sid, ReceiverID: rid, Content: content}
	channel := realtime.GlobalChannel
	if jobID != "" {
		jid, err := bson.ObjectIDFromHex(jobID)
		if err != nil {
			return nil, ErrInvalidMessage
		}
		msg.JobID = &jid
		channel = realtime.RoomChannel(jobID)
	}

	if err := s.Messages.Insert(msg); err != nil {
		return nil, err
	}

	if s.Bus != nil {
		payload, err := realtime.Envelope("receiveMessage", msg)
		if err == nil {
			if err := s.Bus.Publish(ctx, channel, payload); err != nil && s.Logger != nil {
				s.Logger.WithError(err).WithField("channel", channel).Error("message broadcast failed")
			}
		}
	}
	if s.Notifier != nil {
		s.Notifier.Notify(ctx, NotificationEvent{
			UserID:  receiverID,
			Message: "You have a new message",
			Type:    entity.NotificationNewMessage,
		})
	}
	return msg, nil
}

// Between returns the conversation between two users, oldest first.
func (s *MessageService) Between(ctx context.Context, a, b string) ([]entity.Message, error) {
	return s.Messages.FindBetween(a, b)
}

// ByJob returns a job room's messages, newest first.
func (s *MessageService) ByJob(ctx context.Context, jobID string) ([]entity.Message, error) {
	return s.Messages.FindByJob(jobID)
}
