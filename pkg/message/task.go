package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgstrings "github.com/parkplatztransform/parkapi/pkg/strings"
	"github.com/parkplatztransform/parkapi/pkg/task"
)

type taskScheduler struct {
	domainName string
	producer   Producer
	serializer Serializer
}

func NewTaskScheduler(domainName string, producer Producer) task.Scheduler {
	return taskScheduler{
		domainName: domainName,
		producer:   producer,
		serializer: NewSerializer(),
	}
}

func (s taskScheduler) Schedule(ctx context.Context, _ time.Time, tasks ...task.Task) error {
	for _, tsk := range tasks {
		payload, err := s.serializer.Serialize(tsk)
		if err != nil {
			return fmt.Errorf("serialize task %s: %w", tsk.Type(), err)
		}

		err = s.producer.Produce(ctx, &Message{
			ID:      tsk.ID(),
			Topic:   buildTaskTopic(s.domainName, tsk.Type()),
			Payload: payload,
		})
		if err != nil {
			return fmt.Errorf("publish task %s: %w", tsk.Type(), err)
		}
	}
	return nil
}

type TaskConsumerSpec struct {
	Topic           Topic
	ConsumptionType ConsumptionType
	Handler         Handler
}

func RegisterTaskHandler[T task.Task](
	publisherDomain string,
	handler task.TypedHandler[T],
	deserializer *Deserializer,
) (TaskConsumerSpec, error) {
	var blank T
	taskType := blank.Type()
	if taskType == "" {
		return TaskConsumerSpec{}, fmt.Errorf("get task type for %T: blank task must return const value", blank)
	}

	err := deserializer.Register(taskType, TypedDeserializer[T]())
	if err != nil {
		return TaskConsumerSpec{}, fmt.Errorf("register task %T deserializer: %w", blank, err)
	}

	return TaskConsumerSpec{
		Topic:           Topic(buildTaskTopic(publisherDomain, taskType)),
		ConsumptionType: ConsumptionTypeShared,
		Handler:         taskHandlerImpl[T](handler, deserializer),
	}, nil
}

func buildTaskTopic(domainName, taskType string) string {
	domainName = pkgstrings.ToKebabCase(domainName)
	taskType = pkgstrings.ToKebabCase(taskType)
	return fmt.Sprintf("task.%s-domain.%s-queue", domainName, taskType)
}

func taskHandlerImpl[T task.Task](
	handler task.TypedHandler[T],
	deserializer *Deserializer,
) Handler {
	return func(ctx context.Context, msg *Message) error {
		tsk, err := deserializer.Deserialize(msg.Payload)
		if errors.Is(err, ErrDeserializeUnknownMessage) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("deserialize message %v: %w", msg.ID, err)
		}

		concreteTask, ok := tsk.(T)
		if !ok {
			return fmt.Errorf("invalid task struct type %T for messageID %v, expected %T", tsk, msg.ID, concreteTask)
		}

		return handler(ctx, concreteTask)
	}
}
