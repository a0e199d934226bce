package response

import (
	"time"

	"bank-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
	Message string          `json:"message"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type SlotsResponse struct {
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Slots    []string `json:"slots"`
}

type DeleteBookingResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	DeletedBooking BookingResponse `json:"deleted_booking"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID.String(),
		Name:      booking.Name,
		Phone:     booking.Phone,
		Age:       booking.Age,
		Date:      booking.Date,
		Time:      booking.Time,
		Location:  booking.Location,
		CreatedAt: booking.CreatedAt,
	}
}
