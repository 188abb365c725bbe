package service

import (
	"context"
	"time"

	"flamesblue/internal/bookings/repository"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/sanitizer"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (string, error)
	List(ctx context.Context) ([]model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.RecordValidator
	log       *logger.Logger
	now       func() time.Time
}

func NewBookingService(repo repository.BookingRepository, validator *validator.RecordValidator, log *logger.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// Create stores the booking as requested. Vehicle existence, date order and
// overlapping bookings are not checked.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (string, error) {
	s.sanitize(booking)
	s.applyDefaults(booking)

	if err := s.validator.Check(booking); err != nil {
		s.log.Warn("Booking validation failed",
			"user_id", booking.UserID,
			"vehicle_id", booking.VehicleID,
			"error", err,
		)
		return "", err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			"user_id", booking.UserID,
			"vehicle_id", booking.VehicleID,
			"error", err,
		)
		return "", store.AppError(err, "create booking")
	}

	s.log.Info("Booking created successfully",
		"id", booking.ID,
		"user_id", booking.UserID,
		"vehicle_id", booking.VehicleID,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
	)

	return booking.ID, nil
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", "error", err)
		return nil, store.AppError(err, "list bookings")
	}
	return bookings, nil
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.UserID = sanitizer.NormalizeID(booking.UserID)
	booking.VehicleID = sanitizer.NormalizeID(booking.VehicleID)
	booking.StartDate = sanitizer.NormalizeID(booking.StartDate)
	booking.EndDate = sanitizer.NormalizeID(booking.EndDate)
	booking.Subscription = sanitizer.NormalizeText(booking.Subscription)
}

func (s *bookingService) applyDefaults(booking *model.Booking) {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = s.now()
	}
	booking.CreatedAt = model.Timestamp(booking.CreatedAt)
}
