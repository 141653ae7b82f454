package main

import (
	"context"
	"time"

	bookingshandler "github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/handler"
	bookingsrepository "github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/repository"
	bookingsservice "github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/service"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/validator"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/notifications"
	roomshandler "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/handler"
	roomsrepository "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/repository"
	roomsservice "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/service"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/app"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	kafkaconfig "github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka/config"
	kafkamiddleware "github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka/middleware"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting reservations service")

	producer, err := kafka.NewProducer(kafkaconfig.Load(), cfg.NotificationsTopic, cfg.NotificationsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafkamiddleware.MetricsProducerMiddleware())
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}()

	roomService, bookingService := initServices(cfg, producer)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		roomshandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		roomshandler.NewRoomHandler(roomService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, producer *kafka.Producer) (roomsservice.RoomService, bookingsservice.BookingService) {
	roomRepo := roomsrepository.NewMongoRoomRepository(cfg)
	roomService := roomsservice.NewRoomService(roomRepo, cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := roomService.EnsureDefaultRooms(ctx); err != nil {
		cfg.Log.Fatal("Failed to seed default rooms", "error", err)
	}

	bookingService := bookingsservice.NewBookingService(
		bookingsrepository.NewMongoBookingRepository(cfg),
		bookingsrepository.NewSlotLockRepository(cfg),
		roomService,
		validator.NewBookingValidator(cfg.Log),
		notifications.NewKafkaDispatcher(producer, ServiceName, cfg.Log),
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return roomService, bookingService
}
