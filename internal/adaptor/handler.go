package adaptor

import (
	"bank-booking/internal/upstream"
	"bank-booking/internal/usecase"
	"bank-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Review  *ReviewHandler
	Proxy   *ProxyHandler
}

func NewHandler(service *usecase.Service, relay *upstream.Client, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, log),
		Proxy:   NewProxyHandler(relay, config.Upstream, log),
	}
}
