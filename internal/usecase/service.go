package usecase

import (
	"time"

	"bank-booking/internal/data/repository"

	"go.uber.org/zap"
)

// timeNow dipisah supaya bisa di-stub di test
var timeNow = time.Now

type Service struct {
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, classifier SentimentClassifier, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, log),
		Review:  NewReviewService(repo.Review, classifier, log),
	}
}
