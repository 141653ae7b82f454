package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppuranik79/Meeting-Room-Booking/internal/notifications"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	kafkaconfig "github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka/config"
	kafkamiddleware "github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka/middleware"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "notifier"
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting notifier worker")

	mailer := notifications.NewSMTPMailer(cfg)
	handler := notifications.NewEmailHandler(mailer, cfg.OperatorEmail, cfg.Log)

	consumer, err := kafka.NewConsumer(
		kafkaconfig.Load(),
		cfg.NotificationsTopic,
		ConsumerGroup,
		cfg.NotificationsDLQTopic,
		handler,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafkamiddleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(kafkamiddleware.MetricsConsumerMiddleware())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}
