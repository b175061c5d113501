package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type BookingConfirmed struct {
	ConfirmationID string    `json:"confirmation_id"`
	TourType       string    `json:"tour_type"`
	TourName       string    `json:"tour_name"`
	Destination    string    `json:"destination"`
	Days           int       `json:"days"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	TotalPrice     float64   `json:"total_price"`
	Email          string    `json:"email"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
	}
}

func (p *kafkaPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ConfirmationID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking event %s: %w", event.ConfirmationID, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// logPublisher stands in when no brokers are configured.
type logPublisher struct{}

func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) PublishBookingConfirmed(_ context.Context, event BookingConfirmed) error {
	log.Printf("Events: booking %s confirmed (no Kafka brokers configured)", event.ConfirmationID)
	return nil
}

func (logPublisher) Close() error { return nil }
