package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/oneseo/congestion-collector/internal/domain"
)

// Publisher fans accepted congestion records out to a Kafka topic so
// downstream consumers see each run without polling the database.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the sink topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishBatch serializes and publishes the records in a single
// WriteMessages call. Messages are keyed by area name so per-area ordering
// survives partitioning.
func (p *Publisher) PublishBatch(ctx context.Context, records []domain.CongestionRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a record into a Kafka message.
func serializeToMessage(rec domain.CongestionRecord) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize congestion record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.Area),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "congestion_level", Value: []byte(rec.CongestionLevel)},
			{Key: "observed_at", Value: []byte(rec.Timestamp)},
		},
	}, nil
}
