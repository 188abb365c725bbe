package model

import "time"

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

type SupportMessage struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id" validate:"required,notblank"`
	Role      string    `json:"role" bson:"role" validate:"required,oneof=user bot"`
	Message   string    `json:"message" bson:"message" validate:"required,notblank"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required,notblank"`
	Message string `json:"message" validate:"required,notblank"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
