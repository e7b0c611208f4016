// internal/adapters/out/kafka/event_publisher.go
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	eventdom "storefront/internal/domain/event"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// EventPublisher writes domain events to a single topic.
type EventPublisher struct {
	w     messageWriter
	topic string
	log   *zap.Logger
}

// NewEventPublisher builds a writer; no connection is made until the first publish.
func NewEventPublisher(cfg Config, log *zap.Logger) (*EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, errors.New("kafka: topic is empty")
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.LeastBytes{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
		Transport:              &kafkago.Transport{ClientID: cfg.ClientID},
	}
	return newEventPublisher(w, cfg.Topic, log), nil
}

func newEventPublisher(w messageWriter, topic string, log *zap.Logger) *EventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventPublisher{w: w, topic: topic, log: log.Named("kafka")}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...eventdom.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			return err
		}
		msgs = append(msgs, toMessage(ev))
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write %s: %w", p.topic, err)
	}
	p.log.Debug("published", zap.String("topic", p.topic), zap.Int("count", len(msgs)))
	return nil
}

func (p *EventPublisher) Close() error {
	return p.w.Close()
}

func toMessage(ev eventdom.Event) kafkago.Message {
	m := kafkago.Message{
		Key:   []byte(ev.Key),
		Value: ev.Payload,
	}
	for k, v := range ev.Headers {
		m.Headers = append(m.Headers, kafkago.Header{Key: k, Value: []byte(v)})
	}
	m.Headers = append(m.Headers, kafkago.Header{Key: "content-type", Value: []byte("application/json")})
	return m
}
