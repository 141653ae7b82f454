package kafka_middleware

import (
	"context"
	"time"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
)

// LoggingProducerMiddleware logs every publish with its outcome and duration.
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		duration := time.Since(start)

		if err != nil {
			log.Error("Kafka publish failed",
				"topic", msg.Topic,
				"key", msg.Key,
				"event_id", msg.GetEventID(),
				"event_type", msg.GetEventType(),
				"duration", duration,
				"error", err,
			)
			return err
		}

		log.Info("Kafka message published",
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"duration", duration,
		)
		return nil
	}
}

// LoggingConsumerMiddleware logs every processing attempt, retries included.
func LoggingConsumerMiddleware(log *logger.Logger) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		duration := time.Since(start)

		if err != nil {
			log.Error("Kafka message processing failed",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"key", msg.Key,
				"event_id", msg.GetEventID(),
				"retry_count", msg.GetRetryCount(),
				"duration", duration,
				"error", err,
			)
			return err
		}

		log.Info("Kafka message processed",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"duration", duration,
		)
		return nil
	}
}
