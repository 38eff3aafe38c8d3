package enquiry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"sairaj/internal/infra"
)

// Publisher delivers an enquiry to the agency.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// KafkaPublisher writes enquiries to a topic keyed by enquiry ID.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, ErrNotConfigured
	}
	return &KafkaPublisher{writer: infra.NewKafkaWriter(brokers, topic)}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding enquiry: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.ID), Value: value}); err != nil {
		return fmt.Errorf("publishing enquiry %s: %w", msg.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
