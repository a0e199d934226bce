package response

import (
	"time"

	"bank-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	ReviewText     string    `json:"review_text"`
	Classification string    `json:"classification"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewStatsResponse struct {
	Positive int64 `json:"positif"`
	Neutral  int64 `json:"netral"`
	Negative int64 `json:"negatif"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		ReviewText:     review.ReviewText,
		Classification: review.Classification,
		CreatedAt:      review.CreatedAt,
	}
}
