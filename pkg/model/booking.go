package model

import (
	"time"
)

// Booking is a reservation of one room for a single-day wall-clock interval.
// Date is "YYYY-MM-DD" and the times are zero-padded 24-hour "HH:MM"; all
// ordering decisions go through pkg/timeslot rather than string comparison.
// A booking is immutable once persisted.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID    string    `json:"roomId" bson:"room_id" validate:"required,mongodb"`
	Date      string    `json:"date" bson:"date" validate:"required"`
	StartTime string    `json:"startTime" bson:"start_time" validate:"required"`
	EndTime   string    `json:"endTime" bson:"end_time" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"created_at" validate:"omitempty"`
}
