package repository

import (
	"context"

	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.SupportMessage) error
}

type messageRepository struct {
	store store.Store
}

func NewMessageRepository(st store.Store) MessageRepository {
	return &messageRepository{store: st}
}

func (r *messageRepository) Create(ctx context.Context, message *model.SupportMessage) error {
	message.ID = ""
	id, err := r.store.Insert(ctx, model.CollectionSupportMessage, message)
	if err != nil {
		return err
	}
	message.ID = id
	return nil
}
