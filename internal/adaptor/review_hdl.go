package adaptor

import (
	"context"
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

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

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// UpdateReview handles PUT /reviews; the review id travels in the body
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// GetReviewByID handles GET /reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get review by ID")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// GetReviews handles GET /reviews?filmId=&count=
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filmID *int64
	if raw := query.Get("filmId"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid filmId", map[string]string{"filmId": err.Error()})
			return
		}
		filmID = &id
	}

	count := usecase.DefaultReviewCount
	if raw := query.Get("count"); raw != "" {
		parsed, err := utils.ParseOptionalInt(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid count", map[string]string{"count": err.Error()})
			return
		}
		count = *parsed
	}

	reviews, err := h.service.GetReviews(r.Context(), filmID, count)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// AddLike handles PUT /reviews/{id}/like/{userId}
func (h *ReviewHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	h.rating(w, r, "like review", h.service.AddLike)
}

// AddDislike handles PUT /reviews/{id}/dislike/{userId}
func (h *ReviewHandler) AddDislike(w http.ResponseWriter, r *http.Request) {
	h.rating(w, r, "dislike review", h.service.AddDislike)
}

// RemoveLike handles DELETE /reviews/{id}/like/{userId}
func (h *ReviewHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.rating(w, r, "remove review like", h.service.RemoveLike)
}

// RemoveDislike handles DELETE /reviews/{id}/dislike/{userId}
func (h *ReviewHandler) RemoveDislike(w http.ResponseWriter, r *http.Request) {
	h.rating(w, r, "remove review dislike", h.service.RemoveDislike)
}

type ratingFunc func(ctx context.Context, reviewID, userID int64) error

func (h *ReviewHandler) rating(w http.ResponseWriter, r *http.Request, operation string, fn ratingFunc) {
	reviewID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := fn(r.Context(), reviewID, userID); err != nil {
		handleServiceError(h.log, w, r, err, operation)
		return
	}

	utils.ResponseSuccess(w, "Review rating updated", nil)
}
