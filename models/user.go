package models

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"password,omitempty" bson:"password" db:"password"`
	Role      string    `json:"role" bson:"role" db:"role"`
	IsActive  bool      `json:"is_active" bson:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	CreatedBy *string   `json:"created_by,omitempty" bson:"created_by,omitempty" db:"created_by"`
}
