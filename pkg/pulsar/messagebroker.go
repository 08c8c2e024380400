package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/parkplatztransform/parkapi/pkg/log"
	"github.com/parkplatztransform/parkapi/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	messageIDPropertyName = "messageID"
)

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

type MessageBroker struct {
	client pulsar.Client

	producersMutex *sync.Mutex
	producers      map[message.Topic]pulsar.Producer
}

func NewMessageBroker(config Config, logger log.Logger) (*MessageBroker, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	broker := &MessageBroker{
		client:         client,
		producersMutex: &sync.Mutex{},
		producers:      make(map[message.Topic]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	err = broker.testCreateProducer(connTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return broker, nil
}

func (b *MessageBroker) Produce(ctx context.Context, msg *message.Message) error {
	producer, err := b.getOrCreateProducer(message.Topic(msg.Topic))
	if err != nil {
		return err
	}

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: map[string]string{messageIDPropertyName: msg.ID.String()},
	})

	return err
}

func (b *MessageBroker) Consumer(
	topic message.Topic,
	subscriber message.SubscriberName,
	consumptionType message.ConsumptionType,
) (message.Consumer, error) {
	pulsarType := pulsar.Failover
	if consumptionType == message.ConsumptionTypeShared {
		pulsarType = pulsar.Shared
	}

	consumer, err := b.client.Subscribe(pulsar.ConsumerOptions{
		Topic:            string(topic),
		SubscriptionName: string(subscriber),
		Type:             pulsarType,
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic %s by %s subscriber: %w", topic, subscriber, err)
	}

	return newMessageConsumer(consumer, string(topic)), nil
}

func (b *MessageBroker) Close() {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	for _, producer := range b.producers {
		producer.Close()
	}
	b.client.Close()
}

func (b *MessageBroker) getOrCreateProducer(topic message.Topic) (pulsar.Producer, error) {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	producer, ok := b.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := b.client.CreateProducer(pulsar.ProducerOptions{
		Topic: string(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	b.producers[topic] = producer
	return producer, nil
}

func (b *MessageBroker) testCreateProducer(connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		p, err := b.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/test-topic",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}
