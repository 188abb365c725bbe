package model

import "time"

const OtpCodeLength = 6

type Otp struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Phone     string    `json:"phone" bson:"phone" validate:"required,notblank"`
	Code      string    `json:"code" bson:"code" validate:"required,len=6,numeric"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type SendOtpRequest struct {
	Phone string `json:"phone" validate:"required,notblank"`
}

type SendOtpResponse struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
}

// VerifyOtpRequest.Code is a pointer so an absent code (422) is told apart
// from an empty one, which is checked like any other wrong code.
type VerifyOtpRequest struct {
	Phone string  `json:"phone" validate:"required,notblank"`
	Code  *string `json:"code" validate:"required"`
}

const (
	OtpStatusSent     = "sent"
	OtpStatusVerified = "verified"
)

const EventTypeOtpRequested = "otp.requested"

// OtpRequestedEvent is published for every generated code and consumed by
// the SMS notifier.
type OtpRequestedEvent struct {
	Phone       string    `json:"phone"`
	Code        string    `json:"code"`
	RequestedAt time.Time `json:"requested_at"`
}
