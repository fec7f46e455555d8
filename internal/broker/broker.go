package broker

import (
	"context"
	"time"
)

type Producer interface {
	SendMessage(ctx context.Context, value []byte) error
}

const (
	EventLogCreated   = "log.created"
	EventLogUpdated   = "log.updated"
	EventLogDeleted   = "log.deleted"
	EventLogGenerated = "log.generated"
)

// Event is the JSON body published for every log mutation.
type Event struct {
	Event string    `json:"event"`
	LogID string    `json:"log_id,omitempty"`
	Count int       `json:"count,omitempty"`
	At    time.Time `json:"at"`
}

// NopProducer drops every message. Used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, []byte) error {
	return nil
}
