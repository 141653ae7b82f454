package model

// Room is a bookable meeting room. Rooms are seeded once at migration time
// and are read-only afterwards.
type Room struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Capacity int    `json:"capacity" bson:"capacity"`
}
