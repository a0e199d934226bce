package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bank-booking/internal/data/repository"
	"bank-booking/internal/dto/request"
	"bank-booking/internal/dto/response"
	"bank-booking/internal/usecase"
	"bank-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	if bookings == nil {
		bookings = []response.BookingResponse{}
	}
	utils.ResponseJSON(w, http.StatusOK, response.BookingListResponse{Bookings: bookings})
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.CreateBookingResponse{
		Success: true,
		Booking: *booking,
		Message: "Booking created successfully",
	})
}

// CheckAvailability handles POST /api/bookings/check-availability
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	available, err := h.service.CheckAvailability(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "check availability")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AvailabilityResponse{Available: available})
}

// ListFreeSlots handles GET /api/bookings/slots?date=...&location=...
func (h *BookingHandler) ListFreeSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := query.Get("date")
	location := query.Get("location")

	slots, err := h.service.ListFreeSlots(r.Context(), date, location)
	if err != nil {
		h.handleServiceError(w, err, "list free slots")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.SlotsResponse{
		Date:     date,
		Location: location,
		Slots:    slots,
	})
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseError(w, http.StatusBadRequest, "Booking ID is required")
		return
	}

	deleted, err := h.service.DeleteBooking(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.DeleteBookingResponse{
		Success:        true,
		Message:        "Booking deleted successfully",
		DeletedBooking: *deleted,
	})
}

// handleServiceError maps service errors onto the HTTP taxonomy: validation
// 400, slot conflict 409, missing row 404, everything else a generic 500 so
// storage details never leak to the caller.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, vErr.Error())

	case errors.Is(err, repository.ErrConflict):
		h.log.Warn(operation+" slot conflict", zap.Error(err))
		utils.ResponseConflict(w, "Slot is not available. Bookings must be at least 1 hour apart")

	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, "Booking not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
	}
}
