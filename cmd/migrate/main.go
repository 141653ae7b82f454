package main

import (
	"context"
	"time"

	mongomigration "github.com/ppuranik79/Meeting-Room-Booking/internal/migrations/mongo"
	roomsrepository "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/repository"
	roomsservice "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/service"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongomigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	roomService := roomsservice.NewRoomService(roomsrepository.NewMongoRoomRepository(cfg), cfg.Log)
	if err := roomService.EnsureDefaultRooms(ctx); err != nil {
		cfg.Log.Fatal("Room seeding failed", "error", err)
	}

	cfg.Log.Info("Migration completed successfully")
}
