package notifications

import (
	"context"
	"fmt"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
)

// Publisher is the slice of the Kafka producer the dispatcher needs.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Dispatcher hands booking events to the notification pipeline. Callers treat
// dispatch as best effort: a failure here must never undo a stored booking.
type Dispatcher interface {
	DispatchBookingCreated(ctx context.Context, event BookingCreated) error
}

type kafkaDispatcher struct {
	publisher Publisher
	source    string
	log       *logger.Logger
}

func NewKafkaDispatcher(publisher Publisher, source string, log *logger.Logger) Dispatcher {
	return &kafkaDispatcher{
		publisher: publisher,
		source:    source,
		log:       log,
	}
}

func (d *kafkaDispatcher) DispatchBookingCreated(ctx context.Context, event BookingCreated) error {
	msg := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(EventBookingCreated).
		WithSource(d.source).
		Build()

	if err := d.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish booking created event: %w", err)
	}

	d.log.Info("Booking event dispatched",
		"booking_id", event.BookingID,
		"event_type", EventBookingCreated,
	)
	return nil
}
