package repository

import (
	"context"

	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

type OtpRepository interface {
	Create(ctx context.Context, otp *model.Otp) error
	// FindLatest returns the most recently created code for phone, or
	// store.ErrNotFound.
	FindLatest(ctx context.Context, phone string) (*model.Otp, error)
}

type otpRepository struct {
	store store.Store
}

func NewOtpRepository(st store.Store) OtpRepository {
	return &otpRepository{store: st}
}

func (r *otpRepository) Create(ctx context.Context, otp *model.Otp) error {
	otp.ID = ""
	id, err := r.store.Insert(ctx, model.CollectionOtp, otp)
	if err != nil {
		return err
	}
	otp.ID = id
	return nil
}

func (r *otpRepository) FindLatest(ctx context.Context, phone string) (*model.Otp, error) {
	var otp model.Otp
	err := r.store.FindLatest(ctx, model.CollectionOtp, store.Filter{"phone": phone}, "created_at", &otp)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}
