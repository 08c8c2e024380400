package message

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDeserializeUnknownMessage = errors.New("unknown message type")

type messageEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Serializer struct{}

func NewSerializer() Serializer {
	return Serializer{}
}

func (s Serializer) Serialize(msg StructuredMessage) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message data %T: %w", msg, err)
	}

	payload, err := json.Marshal(messageEnvelope{
		Type: msg.Type(),
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("encode message envelope %T: %w", msg, err)
	}

	return payload, nil
}

type (
	DeserializerFunc func(data []byte) (StructuredMessage, error)

	Deserializer struct {
		deserializers map[string]DeserializerFunc
	}
)

func NewDeserializer() *Deserializer {
	return &Deserializer{
		deserializers: make(map[string]DeserializerFunc),
	}
}

func (d *Deserializer) Register(messageType string, fn DeserializerFunc) error {
	if _, ok := d.deserializers[messageType]; ok {
		return fmt.Errorf("deserializer for message type %s already registered", messageType)
	}

	d.deserializers[messageType] = fn
	return nil
}

func (d *Deserializer) Deserialize(payload []byte) (StructuredMessage, error) {
	var envelope messageEnvelope
	err := json.Unmarshal(payload, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decode message envelope: %w", err)
	}

	fn, ok := d.deserializers[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDeserializeUnknownMessage, envelope.Type)
	}

	return fn(envelope.Data)
}

func TypedDeserializer[T StructuredMessage]() DeserializerFunc {
	return func(data []byte) (StructuredMessage, error) {
		var msg T
		err := json.Unmarshal(data, &msg)
		if err != nil {
			return nil, fmt.Errorf("decode message data %T: %w", msg, err)
		}
		return msg, nil
	}
}
