package request

type CreateBookingRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Age      int    `json:"age" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// AvailabilityRequest is the read-only slot check. Its own endpoint, not a
// key-count overload of the create endpoint.
type AvailabilityRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Location string `json:"location" validate:"required"`
}
