package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSlotLockTTL = "SLOT_LOCK_TTL"

	EnvNotificationsTopic    = "NOTIFICATIONS_TOPIC"
	EnvNotificationsDLQTopic = "NOTIFICATIONS_DLQ_TOPIC"
	EnvOperatorEmail         = "OPERATOR_EMAIL"

	EnvSMTPHost = "SMTP_HOST"
	EnvSMTPPort = "SMTP_PORT"
	EnvSMTPUser = "SMTP_USER"
	EnvSMTPPass = "SMTP_PASS"
	EnvSMTPFrom = "SMTP_FROM"
)
