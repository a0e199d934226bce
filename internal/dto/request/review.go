package request

type CreateReviewRequest struct {
	ReviewText string `json:"review_text" validate:"required,min=3,max=2000"`
}
