package entity

import (
	"time"

	"github.com/google/uuid"
)

// Klasifikasi sentimen dari layanan ML
const (
	ClassificationPositive = "positif"
	ClassificationNeutral  = "netral"
	ClassificationNegative = "negatif"
)

type Review struct {
	ID             uuid.UUID `db:"id"`
	ReviewText     string    `db:"review_text"`
	Classification string    `db:"classification"`
	CreatedAt      time.Time `db:"created_at"`
}
