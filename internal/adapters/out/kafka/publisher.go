// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"dietrack/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	HeaderEventType = "event_type"
	HeaderMessageID = "message_id"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are keyed by aggregate id, so every
// event of one aggregate lands on the same partition in outbox order.
type Publisher struct {
	writer messageWriter
	topic  string
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a synchronous writer: Publish returns once every message of the
// batch is acknowledged by all in-sync replicas.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	sugar := logger.Named("kafka").Sugar()
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		Logger:       kafkago.LoggerFunc(sugar.Debugf),
		ErrorLogger:  kafkago.LoggerFunc(sugar.Errorf),
	}
	return newPublisher(writer, topic)
}

func newPublisher(writer messageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafkago.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toKafkaMessage(m))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("failed to write %d message(s) to kafka topic %s: %w", len(batch), p.topic, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(m ports.OutboxMessage) kafkago.Message {
	return kafkago.Message{
		Key:   []byte(m.AggregateID.String()),
		Value: m.Payload,
		Time:  m.OccurredAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventType, Value: []byte(m.EventType)},
			{Key: HeaderMessageID, Value: []byte(m.ID.String())},
		},
	}
}
