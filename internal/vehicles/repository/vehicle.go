package repository

import (
	"context"

	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindAll(ctx context.Context) ([]model.Vehicle, error)
}

type vehicleRepository struct {
	store store.Store
}

func NewVehicleRepository(st store.Store) VehicleRepository {
	return &vehicleRepository{store: st}
}

// Create inserts vehicle and sets its ID. Any ID the caller supplied is
// discarded.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	vehicle.ID = ""
	id, err := r.store.Insert(ctx, model.CollectionVehicle, vehicle)
	if err != nil {
		return err
	}
	vehicle.ID = id
	return nil
}

func (r *vehicleRepository) FindAll(ctx context.Context) ([]model.Vehicle, error) {
	vehicles := []model.Vehicle{}
	if err := r.store.FetchAll(ctx, model.CollectionVehicle, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
