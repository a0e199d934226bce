package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-booking/internal/data/repository"
	"bank-booking/internal/dto/request"
	"bank-booking/internal/dto/response"
	"bank-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingService) ListFreeSlots(ctx context.Context, date, location string) ([]string, error) {
	args := m.Called(ctx, date, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, id string) (*response.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func newBookingRouter(service usecase.BookingService) *chi.Mux {
	h := NewBookingHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/bookings", h.ListBookings)
	r.Post("/api/bookings", h.CreateBooking)
	r.Post("/api/bookings/check-availability", h.CheckAvailability)
	r.Get("/api/bookings/slots", h.ListFreeSlots)
	r.Delete("/api/bookings/{id}", h.DeleteBooking)
	return r
}

func TestListBookings_Shape(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("ListBookings", mock.Anything).Return([]response.BookingResponse{
		{ID: uuid.New().String(), Name: "Budi", Date: "2026-09-07", Time: "10:00", Location: "Cabang Depok"},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.BookingListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Bookings, 1)
	assert.Equal(t, "Budi", body.Bookings[0].Name)
}

func TestListBookings_EmptyIsArray(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("ListBookings", mock.Anything).Return([]response.BookingResponse(nil), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookings":[]`)
}

func TestCreateBooking_Created(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	resp := &response.BookingResponse{
		ID:        uuid.New().String(),
		Name:      "Budi",
		Phone:     "08123456789",
		Age:       30,
		Date:      "2026-09-07",
		Time:      "10:00",
		Location:  "Cabang Depok",
		CreatedAt: time.Now(),
	}
	service.On("CreateBooking", mock.Anything, mock.AnythingOfType("*request.CreateBookingRequest")).
		Return(resp, nil)

	payload := `{"name":"Budi","phone":"08123456789","age":30,"date":"2026-09-07","time":"10:00","location":"Cabang Depok"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var body response.CreateBookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Budi", body.Booking.Name)
	assert.NotEmpty(t, body.Message)
}

func TestCreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "validation error",
			serviceErr: usecase.NewValidationError("cannot book a date in the past"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slot conflict",
			serviceErr: fmt.Errorf("slot taken: %w", repository.ErrConflict),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "storage failure",
			serviceErr: fmt.Errorf("insert booking: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockBookingService{}
			router := newBookingRouter(service)
			service.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			payload := `{"name":"Budi","phone":"08123456789","age":30,"date":"2026-09-07","time":"10:00","location":"Cabang Depok"}`
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(payload)))

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])

			if tt.wantStatus == http.StatusConflict {
				assert.Equal(t, false, body["available"])
			}
			if tt.wantStatus == http.StatusInternalServerError {
				// storage details must not leak to the caller
				assert.NotContains(t, body["error"], "connection refused")
			}
		})
	}
}

func TestCreateBooking_BadJSON(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCheckAvailability_OK(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("CheckAvailability", mock.Anything, mock.Anything).Return(true, nil)

	payload := `{"date":"2026-09-07","time":"10:00","location":"Cabang Depok"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings/check-availability", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())
}

func TestListFreeSlots_OK(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("ListFreeSlots", mock.Anything, "2026-09-07", "Cabang Depok").
		Return([]string{"08:00", "09:00"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2026-09-07&location=Cabang+Depok", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.SlotsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"08:00", "09:00"}, body.Slots)
}

func TestDeleteBooking_Mapping(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		service := &MockBookingService{}
		router := newBookingRouter(service)

		id := uuid.New().String()
		service.On("DeleteBooking", mock.Anything, id).
			Return(nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success returns deleted booking", func(t *testing.T) {
		service := &MockBookingService{}
		router := newBookingRouter(service)

		id := uuid.New().String()
		service.On("DeleteBooking", mock.Anything, id).
			Return(&response.BookingResponse{ID: id, Name: "Budi"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body response.DeleteBookingResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, id, body.DeletedBooking.ID)
	})
}
