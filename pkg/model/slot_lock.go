package model

import "time"

// SlotLock is an advisory lock serializing conflict-check-then-insert for a
// single (room, date). The lock id doubles as the Mongo _id, so a concurrent
// acquire surfaces as a duplicate key error. ExpiresAt backs a TTL index that
// reaps locks leaked by crashed requests.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
