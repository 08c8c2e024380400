package message

import (
	"context"

	"github.com/google/uuid"
)

type Message struct {
	ID    uuid.UUID
	Topic string
	// Key is used for topic partitioning, messages with the same key will fall in the same topic partition
	Key     string
	Payload []byte
}

type StructuredMessage interface {
	ID() uuid.UUID
	Type() string
}

type Handler func(ctx context.Context, msg *Message) error
