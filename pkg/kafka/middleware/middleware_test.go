package kafka_middleware

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
)

func testMessage() kafka.Message {
	return kafka.NewMessage().
		WithKey("507f1f77bcf86cd799439022").
		WithValue(map[string]string{"bookingId": "507f1f77bcf86cd799439022"}).
		WithEventType("booking.created").
		Build()
}

func TestLoggingProducerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Format: logger.JSON, Output: &buf, Service: "test"})

	mw := LoggingProducerMiddleware(log)

	called := false
	err := mw(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("middleware did not call next")
	}
	if !strings.Contains(buf.String(), "Kafka message published") {
		t.Errorf("expected publish log line, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "507f1f77bcf86cd799439022") {
		t.Errorf("expected message key in log line, got: %s", buf.String())
	}
}

func TestLoggingProducerMiddleware_PropagatesError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Output: &buf, Service: "test"})

	wantErr := errors.New("broker down")
	err := LoggingProducerMiddleware(log)(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the handler error back, got: %v", err)
	}
	if !strings.Contains(buf.String(), "Kafka publish failed") {
		t.Errorf("expected failure log line, got: %s", buf.String())
	}
}

func TestLoggingConsumerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Format: logger.JSON, Output: &buf, Service: "test"})

	err := LoggingConsumerMiddleware(log)(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Kafka message processed") {
		t.Errorf("expected consume log line, got: %s", buf.String())
	}
}

func TestMetricsProducerMiddleware(t *testing.T) {
	GetMetrics().Reset()
	mw := MetricsProducerMiddleware()

	for i := 0; i < 3; i++ {
		if err := mw(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
			time.Sleep(time.Millisecond)
			return nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	_ = mw(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		return errors.New("broker down")
	})

	m := GetMetrics()
	if got := atomic.LoadInt64(&m.MessagesPublished); got != 3 {
		t.Errorf("expected 3 published, got %d", got)
	}
	if got := atomic.LoadInt64(&m.MessagesPublishedFailed); got != 1 {
		t.Errorf("expected 1 failed, got %d", got)
	}
	if m.GetAvgPublishDuration() <= 0 {
		t.Error("expected a positive average publish duration")
	}
}

func TestMetricsConsumerMiddleware(t *testing.T) {
	GetMetrics().Reset()
	mw := MetricsConsumerMiddleware()

	if err := mw(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = mw(context.Background(), testMessage(), func(ctx context.Context, m kafka.Message) error {
		return errors.New("smtp unavailable")
	})

	m := GetMetrics()
	if got := atomic.LoadInt64(&m.MessagesConsumed); got != 1 {
		t.Errorf("expected 1 consumed, got %d", got)
	}
	if got := atomic.LoadInt64(&m.MessagesConsumedFailed); got != 1 {
		t.Errorf("expected 1 failed, got %d", got)
	}
}
