package domain

import "time"

// Employee is the managed business record. The id is assigned by the
// repository on insert and never changes; email is unique across the whole
// collection (exact match as stored).
type Employee struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	Salary    float64   `json:"salary" bson:"salary"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
