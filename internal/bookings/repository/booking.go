package repository

import (
	"context"

	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindAll(ctx context.Context) ([]model.Booking, error)
}

type bookingRepository struct {
	store store.Store
}

func NewBookingRepository(st store.Store) BookingRepository {
	return &bookingRepository{store: st}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.ID = ""
	id, err := r.store.Insert(ctx, model.CollectionBooking, booking)
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.store.FetchAll(ctx, model.CollectionBooking, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
