package notifications

import (
	"context"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
)

// NewEmailHandler returns the consumer handler that turns a booking event
// into two emails: an operator alert and a booker confirmation. A payload
// that cannot be decoded is permanent; a failed send is transient and gets
// retried by the consumer.
func NewEmailHandler(mailer Mailer, operatorEmail string, log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		var event BookingCreated
		if err := msg.DecodeValue(&event); err != nil {
			return kafka.NewPermanentError("failed to decode booking event", err)
		}

		log.Info("Processing booking notification",
			"booking_id", event.BookingID,
			"event_id", msg.GetEventID(),
		)

		if err := mailer.Send(ctx, event.OperatorAlert(operatorEmail)); err != nil {
			return kafka.NewTransientError("operator alert failed", err)
		}

		if err := mailer.Send(ctx, event.BookerConfirmation()); err != nil {
			return kafka.NewTransientError("booker confirmation failed", err)
		}

		log.Info("Booking notification emails sent", "booking_id", event.BookingID)
		return nil
	}
}
