package message

import "context"

const (
	// ConsumptionTypeSingle delivers each message to one subscriber at a
	// time, preserving order.
	ConsumptionTypeSingle ConsumptionType = "single"
	// ConsumptionTypeShared spreads messages across subscribers.
	ConsumptionTypeShared ConsumptionType = "shared"
)

type (
	ConsumptionType string

	ConsumerMessage struct {
		Context context.Context
		Message Message
	}

	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(msg *ConsumerMessage)
		Nack(msg *ConsumerMessage)
		Close()
	}

	ConsumerProvider interface {
		Consumer(Topic, SubscriberName, ConsumptionType) (Consumer, error)
	}

	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}

	Broker interface {
		ConsumerProvider
		Producer
	}
)
