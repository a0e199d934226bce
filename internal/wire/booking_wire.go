package wire

import (
	"bank-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - admin listing, newest first
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create booking (validated + slot check)
		r.Post("/", bookingHandler.CreateBooking)

		// POST /api/bookings/check-availability - read-only slot check
		r.Post("/check-availability", bookingHandler.CheckAvailability)

		// GET /api/bookings/slots?date=...&location=... - free hourly slots
		r.Get("/slots", bookingHandler.ListFreeSlots)

		// DELETE /api/bookings/{id} - admin delete with confirmation
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
