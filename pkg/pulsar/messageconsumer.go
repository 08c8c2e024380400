package pulsar

import (
	"context"
	"fmt"
	"sync"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/pkg/message"
)

type pulsarMessageIDContextKey struct{}

type messageConsumer struct {
	name   string
	pulsar pulsar.Consumer

	onceStart sync.Once
	messages  chan *message.ConsumerMessage
}

func newMessageConsumer(pulsarConsumer pulsar.Consumer, subscribedTopic string) message.Consumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", pulsarConsumer.Subscription(), subscribedTopic),
		pulsar:   pulsarConsumer,
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

// Messages starts the pump on first call. The pulsar message id travels in
// the message context so Ack and Nack can address the broker copy.
func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	c.onceStart.Do(func() {
		go c.pumpMessages()
	})
	return c.messages
}

func (c *messageConsumer) pumpMessages() {
	for msg := range c.pulsar.Chan() {
		messageID, err := uuid.Parse(msg.Properties()[messageIDPropertyName])
		if err != nil {
			// not one of ours, hand it back for the dead letter policy
			c.pulsar.NackID(msg.ID())
			continue
		}

		ctx := context.WithValue(context.Background(), pulsarMessageIDContextKey{}, msg.ID())
		c.messages <- &message.ConsumerMessage{
			Context: ctx,
			Message: message.Message{
				ID:      messageID,
				Topic:   msg.Topic(),
				Key:     msg.Key(),
				Payload: msg.Payload(),
			},
		}
	}

	close(c.messages)
}

func (c *messageConsumer) Ack(msg *message.ConsumerMessage) {
	if messageID, ok := msg.Context.Value(pulsarMessageIDContextKey{}).(pulsar.MessageID); ok {
		c.pulsar.AckID(messageID)
	}
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) {
	if messageID, ok := msg.Context.Value(pulsarMessageIDContextKey{}).(pulsar.MessageID); ok {
		c.pulsar.NackID(messageID)
	}
}

func (c *messageConsumer) Close() {
	c.pulsar.Close()
}
