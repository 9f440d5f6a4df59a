package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sentimark/reviews_api/internal/model"
	"github.com/sentimark/reviews_api/internal/sentiment"
	"github.com/sentimark/reviews_api/util"
	"github.com/sentimark/reviews_api/util/tracing"
	"github.com/sentimark/reviews_api/util/values"
)

func (api *API) ReviewRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateReview))
	mux.Method(http.MethodGet, "/", Handler(api.ListReviews))

	return mux
}

func (api *API) CreateReview(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc, _ := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateReviewRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "text field is required", values.BadRequestBody, &tc)
	}

	// Sentiment and creation time are fixed here, once, before the insert.
	text := *req.Text
	reviewSentiment := sentiment.Classify(text)
	createdAt := time.Now()

	// A client that abandons the request does not abort the insert.
	newReview, err := api.Store.CreateReview(context.WithoutCancel(r.Context()), text, reviewSentiment, createdAt)
	if err != nil {
		return respondWithError(err, "failed to create review", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Review created successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       model.NewReviewResponse(newReview),
	}
}

func (api *API) ListReviews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc, _ := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	// The filter is passed through verbatim. A value outside the known
	// sentiments simply matches zero rows.
	filter := r.URL.Query().Get("sentiment")

	reviews, err := api.Store.ListReviews(context.WithoutCancel(r.Context()), filter)
	if err != nil {
		return respondWithError(err, "failed to list reviews", values.Error, &tc)
	}

	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, model.NewReviewResponse(review))
	}

	return &ServerResponse{
		Message:    "Reviews retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       responses,
	}
}
