package repository

import (
	"context"

	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

type UserRepository interface {
	// CreateIfAbsent inserts user unless a user with the same phone exists.
	// It reports whether a record was written.
	CreateIfAbsent(ctx context.Context, user *model.User) (bool, error)
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	user.ID = ""
	return r.store.InsertIfAbsent(ctx, model.CollectionUser, store.Filter{"phone": user.Phone}, user)
}
