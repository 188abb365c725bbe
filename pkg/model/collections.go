package model

import "time"

// Collection names are part of the storage contract; existing data lives
// under exactly these names.
const (
	CollectionUser           = "user"
	CollectionVehicle        = "vehicle"
	CollectionBooking        = "booking"
	CollectionOtp            = "otp"
	CollectionSupportMessage = "supportmessage"
)

var Collections = []string{
	CollectionUser,
	CollectionVehicle,
	CollectionBooking,
	CollectionOtp,
	CollectionSupportMessage,
}

// Timestamp is the created_at value for a record written at t: UTC,
// truncated to the millisecond precision BSON dates keep.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
