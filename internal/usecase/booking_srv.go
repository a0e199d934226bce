package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"bank-booking/internal/data/entity"
	"bank-booking/internal/data/repository"
	"bank-booking/internal/dto/request"
	"bank-booking/internal/dto/response"
	"bank-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

type BookingService interface {
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (bool, error)
	ListFreeSlots(ctx context.Context, date, location string) ([]string, error)
	DeleteBooking(ctx context.Context, id string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = response.BookingToResponse(booking)
	}

	s.log.Info("Bookings listed", zap.Int("count", len(out)))
	return out, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	if err := s.validateBookingRules(req); err != nil {
		s.log.Warn("Create booking rejected",
			zap.Error(err),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.String("location", req.Location),
		)
		return nil, err
	}

	booking := &entity.Booking{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Age:       req.Age,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		CreatedAt: timeNow(),
	}

	if err := s.repo.CreateIfAvailable(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
		zap.String("location", booking.Location),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (bool, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return false, validationError(utils.FormatValidationErrors(errs))
	}

	minutes, ok := entity.TimeToMinutes(req.Time)
	if !ok {
		return false, validationError("invalid time format, expected HH:MM")
	}

	existing, err := s.repo.FindByDateLocation(ctx, req.Date, req.Location)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}

	return entity.Available(existing, minutes), nil
}

func (s *bookingService) ListFreeSlots(ctx context.Context, date, location string) ([]string, error) {
	if date == "" {
		return nil, validationError("date is required")
	}
	if location == "" {
		return nil, validationError("location is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, validationError("invalid date format, expected YYYY-MM-DD")
	}

	existing, err := s.repo.FindByDateLocation(ctx, date, location)
	if err != nil {
		return nil, fmt.Errorf("list free slots: %w", err)
	}

	return entity.FreeSlots(existing), nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationError("invalid booking id")
	}

	deleted, err := s.repo.Delete(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", id),
		zap.String("date", deleted.Date),
		zap.String("location", deleted.Location),
	)

	resp := response.BookingToResponse(deleted)
	return &resp, nil
}

// validateBookingRules runs the business checks in a fixed order, each with
// its own message: phone format, positive age, valid date, not in the past,
// weekday only, time inside service hours.
func (s *bookingService) validateBookingRules(req *request.CreateBookingRequest) error {
	if !phonePattern.MatchString(req.Phone) {
		return validationError("invalid phone number, must be 10-15 digits")
	}

	if req.Age <= 0 {
		return validationError("age must be a positive number")
	}

	bookingDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return validationError("invalid date format, expected YYYY-MM-DD")
	}

	// Day-granularity comparison; ISO dates compare correctly as strings.
	today := timeNow().Format(dateLayout)
	if req.Date < today {
		return validationError("cannot book a date in the past")
	}

	if isWeekend(bookingDate) {
		return validationError("bookings are available on weekdays only (Monday-Friday)")
	}

	if _, ok := entity.TimeToMinutes(req.Time); !ok {
		return validationError("invalid time format, expected HH:MM")
	}
	if req.Time < entity.ServiceOpen || req.Time > entity.ServiceClose {
		return validationError("time must be between 08:00 and 15:00")
	}

	return nil
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
