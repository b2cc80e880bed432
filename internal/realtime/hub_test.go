package realtime

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

type memoryBus struct {
	mu        sync.Mutex
	published []Event
}

func (b *memoryBus) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, Event{Channel: channel, Payload: payload})
	return nil
}

func (b *memoryBus) Subscribe(ctx context.Context, _ string) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type memoryJobRepo struct {
	jobs map[string]*entity.Job
}

func (r *memoryJobRepo) Create(j *entity.Job) error { r.jobs[j.ID.Hex()] = j; return nil }
func (r *memoryJobRepo) GetByID(id string) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return j, nil
}
func (r *memoryJobRepo) FindOpen() ([]entity.Job, error)                 { return nil, nil }
func (r *memoryJobRepo) FindByApplicant(string) ([]entity.Job, error)    { return nil, nil }
func (r *memoryJobRepo) FindByEmployer(string) ([]entity.Job, error)     { return nil, nil }
func (r *memoryJobRepo) PushApplicant(string, entity.Applicant) error    { return nil }
func (r *memoryJobRepo) SetApplicantStatus(string, string, string) error { return nil }

type memoryMessageRepo struct {
	messages []entity.Message
}

func (r *memoryMessageRepo) Insert(m *entity.Message) error {
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	r.messages = append(r.messages, *m)
	return nil
}
func (r *memoryMessageRepo) FindBetween(string, string) ([]entity.Message, error) { return nil, nil }
func (r *memoryMessageRepo) FindByJob(string) ([]entity.Message, error)           { return nil, nil }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func drain(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case payload := <-c.send:
		return payload
	default:
		return nil
	}
}

func decodeFrame(t *testing.T, payload []byte) Frame {
	t.Helper()
	var f Frame
	require.NoError(t, json.Unmarshal(payload, &f))
	return f
}

func TestHubDispatch(t *testing.T) {
	hub := NewHub(&memoryBus{}, nil)
	inRoom := NewClient(hub, nil, "u1")
	outside := NewClient(hub, nil, "u2")
	hub.Register(inRoom)
	hub.Register(outside)
	hub.Join("job1", inRoom)

	t.Run("room events reach members only", func(t *testing.T) {
		hub.Dispatch(Event{Channel: RoomChannel("job1"), Payload: []byte(`{"event":"receiveMessage"}`)})
		assert.NotNil(t, drain(t, inRoom))
		assert.Nil(t, drain(t, outside))
	})

	t.Run("global events reach everyone", func(t *testing.T) {
		hub.Dispatch(Event{Channel: GlobalChannel, Payload: []byte(`{"event":"receiveMessage"}`)})
		assert.NotNil(t, drain(t, inRoom))
		assert.NotNil(t, drain(t, outside))
	})

	t.Run("unrelated channels are ignored", func(t *testing.T) {
		hub.Dispatch(Event{Channel: "other:channel", Payload: []byte(`{}`)})
		assert.Nil(t, drain(t, inRoom))
		assert.Nil(t, drain(t, outside))
	})

	t.Run("unregister leaves rooms", func(t *testing.T) {
		hub.Unregister(inRoom)
		assert.False(t, hub.InRoom("job1", inRoom))
		hub.Dispatch(Event{Channel: RoomChannel("job1"), Payload: []byte(`{}`)})
		assert.Nil(t, drain(t, inRoom))
	})
}

func TestGatewayJoinRoom(t *testing.T) {
	employer := bson.NewObjectID()
	worker := bson.NewObjectID()
	stranger := bson.NewObjectID()
	job := &entity.Job{
		ID:       bson.NewObjectID(),
		Title:    "Mow lawn",
		Employer: employer,
		Status:   entity.JobStatusOpen,
		Applicants: []entity.Applicant{
			{User: worker, Status: entity.ApplicantStatusApplied},
		},
	}
	jobs := &memoryJobRepo{jobs: map[string]*entity.Job{job.ID.Hex(): job}}

	fixture := func(userID string) (*Gateway, *Hub, *Client) {
		hub := NewHub(&memoryBus{}, nil)
		gw := NewGateway(hub, &memoryBus{}, jobs, &memoryMessageRepo{}, quietLogger())
		c := NewClient(hub, nil, userID)
		hub.Register(c)
		return gw, hub, c
	}

	join := func(gw *Gateway, c *Client, jobID string) {
		data, _ := json.Marshal(map[string]string{"jobId": jobID})
		gw.Handle(c, Frame{Event: "joinRoom", Data: data})
	}

	t.Run("employer joins", func(t *testing.T) {
		gw, hub, c := fixture(employer.Hex())
		join(gw, c, job.ID.Hex())
		assert.True(t, hub.InRoom(job.ID.Hex(), c))
	})

	t.Run("applicant joins", func(t *testing.T) {
		gw, hub, c := fixture(worker.Hex())
		join(gw, c, job.ID.Hex())
		assert.True(t, hub.InRoom(job.ID.Hex(), c))
	})

	t.Run("non-participant is refused", func(t *testing.T) {
		gw, hub, c := fixture(stranger.Hex())
		join(gw, c, job.ID.Hex())
		assert.False(t, hub.InRoom(job.ID.Hex(), c))

		f := decodeFrame(t, drain(t, c))
		assert.Equal(t, "error", f.Event)
		assert.Contains(t, string(f.Data), "Unauthorized access to chat room")
	})

	t.Run("unknown job", func(t *testing.T) {
		gw, _, c := fixture(worker.Hex())
		join(gw, c, bson.NewObjectID().Hex())

		f := decodeFrame(t, drain(t, c))
		assert.Equal(t, "error", f.Event)
		assert.Contains(t, string(f.Data), "Job not found")
	})
}

func TestGatewaySendMessage(t *testing.T) {
	jobID := bson.NewObjectID()
	sender := bson.NewObjectID()
	receiver := bson.NewObjectID()

	fixture := func() (*Gateway, *memoryMessageRepo, *memoryBus, *Client) {
		hub := NewHub(&memoryBus{}, nil)
		messages := &memoryMessageRepo{}
		bus := &memoryBus{}
		gw := NewGateway(hub, bus, &memoryJobRepo{jobs: map[string]*entity.Job{}}, messages, quietLogger())
		return gw, messages, bus, NewClient(hub, nil, sender.Hex())
	}

	send := func(gw *Gateway, c *Client, fields map[string]string) {
		data, _ := json.Marshal(fields)
		gw.Handle(c, Frame{Event: "sendMessage", Data: data})
	}

	t.Run("persists then publishes to the room", func(t *testing.T) {
		gw, messages, bus, c := fixture()
		send(gw, c, map[string]string{
			"jobId":    jobID.Hex(),
			"sender":   sender.Hex(),
			"receiver": receiver.Hex(),
			"content":  "hello",
		})

		require.Len(t, messages.messages, 1)
		assert.Equal(t, "hello", messages.messages[0].Content)

		require.Len(t, bus.published, 1)
		assert.Equal(t, RoomChannel(jobID.Hex()), bus.published[0].Channel)
		f := decodeFrame(t, bus.published[0].Payload)
		assert.Equal(t, "receiveMessage", f.Event)
	})

	t.Run("missing fields drop the event", func(t *testing.T) {
		gw, messages, bus, c := fixture()
		send(gw, c, map[string]string{
			"jobId":   jobID.Hex(),
			"sender":  sender.Hex(),
			"content": "hello",
		})
		assert.Empty(t, messages.messages)
		assert.Empty(t, bus.published)
	})

	t.Run("malformed ids drop the event", func(t *testing.T) {
		gw, messages, bus, c := fixture()
		send(gw, c, map[string]string{
			"jobId":    "not-hex",
			"sender":   sender.Hex(),
			"receiver": receiver.Hex(),
			"content":  "hello",
		})
		assert.Empty(t, messages.messages)
		assert.Empty(t, bus.published)
	})

	t.Run("unknown events are ignored", func(t *testing.T) {
		gw, messages, _, c := fixture()
		gw.Handle(c, Frame{Event: "typing", Data: []byte(`{}`)})
		assert.Empty(t, messages.messages)
	})
}
