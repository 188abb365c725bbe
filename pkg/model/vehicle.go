package model

import "time"

const (
	VehicleTypeBike = "bike"
	VehicleTypeCar  = "car"
)

// Vehicle is a rental listing. Type is expected to be one of the
// VehicleType constants but is stored as given.
type Vehicle struct {
	ID           string    `json:"_id,omitempty" bson:"_id,omitempty"`
	OwnerID      string    `json:"owner_id" bson:"owner_id" validate:"required,notblank"`
	Type         string    `json:"type" bson:"type" validate:"required,notblank"`
	Title        string    `json:"title" bson:"title" validate:"required,notblank"`
	Description  string    `json:"description" bson:"description"`
	Photos       []string  `json:"photos" bson:"photos"`
	HasInsurance bool      `json:"has_insurance" bson:"has_insurance"`
	Location     string    `json:"location" bson:"location"`
	PricePerDay  *float64  `json:"price_per_day" bson:"price_per_day" validate:"required,gte=0"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
