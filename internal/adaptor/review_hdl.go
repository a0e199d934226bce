package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bank-booking/internal/dto/request"
	"bank-booking/internal/usecase"
	"bank-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews. The review text is classified by
// the sentiment service before being stored.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.ResponseError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.log.Error("Failed to create review", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, review)
}

// GetReviewStats handles GET /api/review-stats
func (h *ReviewHandler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.log.Error("Failed to get review stats", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, stats)
}
