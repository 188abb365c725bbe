package model

import "time"

// Booking dates are ISO date strings (YYYY-MM-DD) kept verbatim; ordering
// and overlap are not checked.
type Booking struct {
	ID              string    `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID          string    `json:"user_id" bson:"user_id" validate:"required,notblank"`
	VehicleID       string    `json:"vehicle_id" bson:"vehicle_id" validate:"required,notblank"`
	StartDate       string    `json:"start_date" bson:"start_date" validate:"required,notblank"`
	EndDate         string    `json:"end_date" bson:"end_date" validate:"required,notblank"`
	InstantDelivery bool      `json:"instant_delivery" bson:"instant_delivery"`
	Subscription    string    `json:"subscription" bson:"subscription"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
