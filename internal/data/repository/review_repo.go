package repository

import (
	"context"
	"fmt"

	"bank-booking/internal/data/entity"
	"bank-booking/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// CountByClassification returns how many reviews carry each sentiment
	// label, keyed by classification.
	CountByClassification(ctx context.Context) (map[string]int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, review_text, classification, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.ReviewText,
		review.Classification,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
			zap.String("classification", review.Classification),
		)
		return fmt.Errorf("create review %s: %w", review.ID.String(), err)
	}

	return nil
}

func (r *reviewRepository) CountByClassification(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT classification, COUNT(*)
		FROM reviews
		GROUP BY classification
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews by classification: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var classification string
		var count int64
		if err := rows.Scan(&classification, &count); err != nil {
			return nil, fmt.Errorf("scan review count row: %w", err)
		}
		counts[classification] = count
	}

	return counts, rows.Err()
}
