package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"identitychain/internal/platform/kafka/producer"
)

// KafkaProducer is the slice of the platform producer the publisher needs.
type KafkaProducer interface {
	ProduceAsync(msg *producer.Message) error
}

// Publisher captures structured audit events. Events always land in the
// store; when a Kafka producer is configured they are additionally published
// asynchronously, and a publish failure never fails the write that produced
// the event.
type Publisher struct {
	store  Store
	kafka  KafkaProducer
	topic  string
	logger *slog.Logger
}

// PublisherOption configures optional sinks.
type PublisherOption func(*Publisher)

// WithKafka adds an asynchronous Kafka sink on the given topic.
func WithKafka(p KafkaProducer, topic string) PublisherOption {
	return func(pub *Publisher) {
		pub.kafka = p
		pub.topic = topic
	}
}

func NewPublisher(store Store, logger *slog.Logger, opts ...PublisherOption) *Publisher {
	pub := &Publisher{store: store, logger: logger}
	for _, opt := range opts {
		opt(pub)
	}
	return pub
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := p.store.Append(ctx, event); err != nil {
		return err
	}
	if p.kafka == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("audit event encode failed", "txn", event.Txn, "error", err)
		return nil
	}
	if err := p.kafka.ProduceAsync(&producer.Message{
		Topic: p.topic,
		Key:   []byte(event.SubmitterDID),
		Value: payload,
	}); err != nil {
		p.logger.Error("audit event publish failed", "txn", event.Txn, "error", err)
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, submitterDID string) ([]Event, error) {
	return p.store.ListBySubmitter(ctx, submitterDID)
}
