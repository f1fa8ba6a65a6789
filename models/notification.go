package models

import "time"

// Notification IDs are strings because the record can live in either store:
// a formatted bigserial in Postgres, an ObjectID hex in Mongo.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	UserID    string    `json:"user_id" bson:"user_id" db:"user_id"`
	Message   string    `json:"message" bson:"message" db:"message"`
	BookingID int64     `json:"booking_id" bson:"booking_id" db:"booking_id"`
	IsRead    bool      `json:"is_read" bson:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
