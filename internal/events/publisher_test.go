package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher()
	assert.NoError(t, p.PublishBookingConfirmed(context.Background(), BookingConfirmed{ConfirmationID: "c-1"}))
	assert.NoError(t, p.Close())
}

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "booking.confirmed").(*kafkaPublisher)
	assert.Equal(t, "booking.confirmed", p.writer.Topic)
}
