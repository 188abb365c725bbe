package model

import "time"

type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Phone     string    `json:"phone" bson:"phone" validate:"required,notblank"`
	Name      string    `json:"name" bson:"name"`
	AvatarURL string    `json:"avatar_url" bson:"avatar_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
