package usecase

import (
	"context"
	"fmt"

	"bank-booking/internal/data/entity"
	"bank-booking/internal/data/repository"
	"bank-booking/internal/dto/request"
	"bank-booking/internal/dto/response"
	"bank-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SentimentClassifier labels review text. Implemented by upstream.SentimentClient.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetStats(ctx context.Context) (*response.ReviewStatsResponse, error)
}

type reviewService struct {
	repo       repository.ReviewRepository
	classifier SentimentClassifier
	log        *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, classifier SentimentClassifier, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		classifier: classifier,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	classification, err := s.classifier.Classify(ctx, req.ReviewText)
	if err != nil {
		s.log.Error("Failed to classify review", zap.Error(err))
		return nil, fmt.Errorf("classify review: %w", err)
	}

	review := &entity.Review{
		ID:             uuid.New(),
		ReviewText:     req.ReviewText,
		Classification: classification,
		CreatedAt:      timeNow(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("classification", classification),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetStats(ctx context.Context) (*response.ReviewStatsResponse, error) {
	counts, err := s.repo.CountByClassification(ctx)
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}

	stats := &response.ReviewStatsResponse{
		Positive: counts[entity.ClassificationPositive],
		Neutral:  counts[entity.ClassificationNeutral],
		Negative: counts[entity.ClassificationNegative],
	}

	return stats, nil
}
