package usecase

import (
	"context"
	"errors"
	"testing"

	"bank-booking/internal/data/entity"
	"bank-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) CountByClassification(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func TestCreateReview_Success(t *testing.T) {
	repo := &MockReviewRepository{}
	classifier := &MockClassifier{}
	svc := NewReviewService(repo, classifier, zap.NewNop())

	classifier.On("Classify", mock.Anything, "Pelayanan sangat ramah").Return("positif", nil)

	var stored *entity.Review
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.Review)
		}).
		Return(nil)

	resp, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		ReviewText: "Pelayanan sangat ramah",
	})

	assert.NoError(t, err)
	assert.Equal(t, "positif", resp.Classification)
	assert.Equal(t, "Pelayanan sangat ramah", resp.ReviewText)

	assert.NotNil(t, stored)
	assert.Equal(t, "positif", stored.Classification)
	assert.False(t, stored.CreatedAt.IsZero())

	repo.AssertExpectations(t)
	classifier.AssertExpectations(t)
}

func TestCreateReview_EmptyText(t *testing.T) {
	repo := &MockReviewRepository{}
	classifier := &MockClassifier{}
	svc := NewReviewService(repo, classifier, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{ReviewText: ""})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_ClassifierFailure(t *testing.T) {
	repo := &MockReviewRepository{}
	classifier := &MockClassifier{}
	svc := NewReviewService(repo, classifier, zap.NewNop())

	classifier.On("Classify", mock.Anything, mock.Anything).
		Return("", errors.New("sentiment service returned status 503"))

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		ReviewText: "Antriannya panjang sekali",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetStats(t *testing.T) {
	repo := &MockReviewRepository{}
	classifier := &MockClassifier{}
	svc := NewReviewService(repo, classifier, zap.NewNop())

	repo.On("CountByClassification", mock.Anything).Return(map[string]int64{
		"positif": 100,
		"negatif": 49,
	}, nil)

	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(100), stats.Positive)
	assert.Equal(t, int64(0), stats.Neutral)
	assert.Equal(t, int64(49), stats.Negative)
}
