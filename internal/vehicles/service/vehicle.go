package service

import (
	"context"
	"time"

	"flamesblue/internal/vehicles/repository"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/sanitizer"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

type VehicleService interface {
	Create(ctx context.Context, vehicle *model.Vehicle) (string, error)
	List(ctx context.Context) ([]model.Vehicle, error)
}

type vehicleService struct {
	repo      repository.VehicleRepository
	validator *validator.RecordValidator
	log       *logger.Logger
	now       func() time.Time
}

func NewVehicleService(repo repository.VehicleRepository, validator *validator.RecordValidator, log *logger.Logger) VehicleService {
	return &vehicleService{
		repo:      repo,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

func (s *vehicleService) Create(ctx context.Context, vehicle *model.Vehicle) (string, error) {
	s.sanitize(vehicle)
	s.applyDefaults(vehicle)

	if err := s.validator.Check(vehicle); err != nil {
		s.log.Warn("Vehicle validation failed",
			"owner_id", vehicle.OwnerID,
			"error", err,
		)
		return "", err
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle",
			"owner_id", vehicle.OwnerID,
			"error", err,
		)
		return "", store.AppError(err, "create vehicle")
	}

	s.log.Info("Vehicle created successfully",
		"id", vehicle.ID,
		"owner_id", vehicle.OwnerID,
		"type", vehicle.Type,
	)

	return vehicle.ID, nil
}

func (s *vehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list vehicles", "error", err)
		return nil, store.AppError(err, "list vehicles")
	}
	return vehicles, nil
}

func (s *vehicleService) sanitize(vehicle *model.Vehicle) {
	vehicle.OwnerID = sanitizer.NormalizeID(vehicle.OwnerID)
	vehicle.Type = sanitizer.NormalizeID(vehicle.Type)
	vehicle.Title = sanitizer.NormalizeTitle(vehicle.Title)
	vehicle.Description = sanitizer.NormalizeText(vehicle.Description)
	vehicle.Location = sanitizer.NormalizeLocation(vehicle.Location)
	vehicle.Photos = sanitizer.NormalizePhotos(vehicle.Photos)
}

func (s *vehicleService) applyDefaults(vehicle *model.Vehicle) {
	if vehicle.Photos == nil {
		vehicle.Photos = []string{}
	}
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = model.Timestamp(s.now())
	} else {
		vehicle.CreatedAt = model.Timestamp(vehicle.CreatedAt)
	}
}
