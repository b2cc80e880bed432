package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// GlobalChannel carries messages with no job scope.
const GlobalChannel = "chat:global"

// chatPattern matches every chat channel, room-scoped and global.
const chatPattern = "chat:*"

// RoomChannel returns the bus channel for a job's chat room.
func RoomChannel(jobID string) string { return "chat:room:" + jobID }

// Event is a raw payload observed on a bus channel.
type Event struct {
	Channel string
	Payload []byte
}

// Bus is the explicit broadcast handle shared by the realtime gateway and the
// HTTP message path. Delivery is fire-and-forget.
type Bus interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe delivers events for every channel matching the pattern until
	// the context is cancelled.
	Subscribe(ctx context.Context, pattern string) (<-chan Event, error)
}

// RedisBus implements Bus on Redis pub/sub.
type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func (b *RedisBus) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.rdb.Publish(ctx, channel, payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, pattern string) (<-chan Event, error) {
	ps := b.rdb.PSubscribe(ctx, pattern)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}
	out := make(chan Event, 64)
	go func() {
		defer close(out)
		defer func() { _ = ps.Close() }()
		ch := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				out <- Event{Channel: msg.Channel, Payload: []byte(msg.Payload)}
			}
		}
	}()
	return out, nil
}

var _ Bus = (*RedisBus)(nil)

// Frame is the wire format for realtime events in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Envelope marshals an event frame for publishing or direct delivery.
func Envelope(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}
