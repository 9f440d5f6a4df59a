package model

import (
	"time"

	"github.com/sentimark/reviews_api/internal/sentiment"
	"github.com/sentimark/reviews_api/util"
)

// Review is the persisted record: submitted text plus the sentiment
// computed once at creation time. Rows are never updated or deleted.
type Review struct {
	ID        int64               `json:"id"`
	Text      string              `json:"text"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreateReviewRequest uses a pointer so a missing "text" field is
// distinguishable from an empty string. Empty strings are accepted.
type CreateReviewRequest struct {
	Text *string `json:"text" validate:"required"`
}

type ReviewResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"created_at"`
}

func NewReviewResponse(review Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Text:      review.Text,
		Sentiment: string(review.Sentiment),
		CreatedAt: util.FormatTime(time.RFC3339, review.CreatedAt),
	}
}
