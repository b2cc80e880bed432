package realtime

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

// Gateway maps inbound realtime events to repository operations and bus
// publishes. Authorization for a room mirrors the job ownership check:
// employer or applicant.
type Gateway struct {
	hub      *Hub
	bus      Bus
	jobs     repository.JobRepository
	messages repository.MessageRepository
	logger   *logrus.Logger
}

func NewGateway(hub *Hub, bus Bus, jobs repository.JobRepository, messages repository.MessageRepository, logger *logrus.Logger) *Gateway {
	return &Gateway{hub: hub, bus: bus, jobs: jobs, messages: messages, logger: logger}
}

type joinRoomPayload struct {
	JobID string `json:"jobId"`
}

type sendMessagePayload struct {
	JobID    string `json:"jobId"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

// Handle dispatches one inbound frame. Unknown events are ignored.
func (g *Gateway) Handle(c *Client, f Frame) {
	switch f.Event {
	case "joinRoom":
		var p joinRoomPayload
		if err := json.Unmarshal(f.Data, &p); err != nil {
			return
		}
		g.joinRoom(c, p.JobID)
	case "sendMessage":
		var p sendMessagePayload
		if err := json.Unmarshal(f.Data, &p); err != nil {
			return
		}
		g.sendMessage(c, p)
	}
}

func (g *Gateway) joinRoom(c *Client, jobID string) {
	job, err := g.jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.sendError("Job not found")
			return
		}
		g.logger.WithError(err).WithField("job_id", jobID).Error("joinRoom failed")
		return
	}
	uid, err := bson.ObjectIDFromHex(c.UserID)
	if err != nil || !job.IsParticipant(uid) {
		c.sendError("Unauthorized access to chat room")
		return
	}
	g.hub.Join(jobID, c)
}

// sendMessage persists the message and broadcasts it to the job room. Any
// missing field makes the whole event a silent no-op; malformed realtime
// input is dropped, not rejected.
func (g *Gateway) sendMessage(c *Client, p sendMessagePayload) {
	if p.JobID == "" || p.Sender == "" || p.Receiver == "" || p.Content == "" {
		return
	}
	jid, err := bson.ObjectIDFromHex(p.JobID)
	if err != nil {
		return
	}
	sid, err := bson.ObjectIDFromHex(p.Sender)
	if err != nil {
		return
	}
	rid, err := bson.ObjectIDFromHex(p.Receiver)
	if err != nil {
		return
	}
	msg := &entity.Message{JobID: &jid, SenderID: sid, ReceiverID: rid, Content: p.Content}
	if err := g.messages.Insert(msg); err != nil {
		g.logger.WithError(err).Error("saving message failed")
		return
	}
	payload, err := Envelope("receiveMessage", msg)
	if err != nil {
		return
	}
	if err := g.bus.Publish(context.Background(), RoomChannel(p.JobID), payload); err != nil {
		g.logger.WithError(err).WithField("job_id", p.JobID).Error("broadcast failed")
	}
}
