package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of asynchronous work addressed by type.
type Task interface {
	ID() uuid.UUID
	Type() string
}

type (
	TypedHandler[T Task] func(ctx context.Context, task T) error
	Handler              TypedHandler[Task]
)

// Scheduler enqueues tasks for execution at or after the given time.
type Scheduler interface {
	Schedule(ctx context.Context, at time.Time, tasks ...Task) error
}
