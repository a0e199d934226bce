package wire

import (
	"bank-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/reviews - submit review, classified via sentiment service
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/review-stats - counts per classification
	r.Get("/api/review-stats", reviewHandler.GetReviewStats)
}
