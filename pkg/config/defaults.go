package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "meeting_rooms"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "4000"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Upper bound on how long a leaked slot lock can block a (room, date)
	// before the TTL monitor reaps it. Must exceed RequestTimeout: a lock
	// reaped while its owning request is still inside the
	// conflict-check-then-insert transaction would let a second request in.
	DefaultSlotLockTTL = 60 * time.Second

	DefaultNotificationsTopic    = "booking-notifications"
	DefaultNotificationsDLQTopic = "booking-notifications-dlq"
	DefaultOperatorEmail         = "operator@example.com"
)
