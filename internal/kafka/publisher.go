package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshalEnvelope = errors.New("error marshalling envelope")
	ErrWriteMessage    = errors.New("error writing message")
)

const DefaultPublishTimeout = 5 * time.Second

type PublisherConfig struct {
	Writer  Writer
	Timeout time.Duration
}

// Publisher sends hook envelopes to their destination topic. Each call is
// bounded by the configured timeout.
type Publisher struct {
	writer  Writer
	timeout time.Duration
}

func NewPublisher(cfg PublisherConfig) *Publisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Publisher{
		writer:  cfg.Writer,
		timeout: timeout,
	}
}

func (p *Publisher) Send(ctx context.Context, destination, routingKey string, envelope any) error {
	const fn = "Publisher:Send"
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalEnvelope, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: destination,
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderRoutingKey, Value: []byte(routingKey)},
			{Key: HeaderContentType, Value: []byte(ContentTypeJSON)},
		},
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
