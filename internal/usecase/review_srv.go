package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"

	"go.uber.org/zap"
)

const DefaultReviewCount = 10

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error
	GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, filmID *int64, count int) ([]response.ReviewResponse, error)

	// Ratings
	AddLike(ctx context.Context, reviewID, userID int64) error
	AddDislike(ctx context.Context, reviewID, userID int64) error
	RemoveLike(ctx context.Context, reviewID, userID int64) error
	RemoveDislike(ctx context.Context, reviewID, userID int64) error
}

type reviewService struct {
	repo   *repository.Repository
	events EventService
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, events EventService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.IsPositive == nil {
		return nil, validationError("isPositive is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, validationError("content must not be blank")
	}

	// Check if user and film exist
	if _, err := requireUser(ctx, s.repo, req.UserID); err != nil {
		return nil, err
	}
	if _, err := requireFilm(ctx, s.repo, req.FilmID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Content:    req.Content,
		IsPositive: *req.IsPositive,
		UserID:     req.UserID,
		FilmID:     req.FilmID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", review.UserID),
		zap.Int64("film_id", review.FilmID),
	)
	s.events.Record(ctx, review.UserID, entity.EventTypeReview, entity.OperationAdd, review.ID)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// UpdateReview changes content and polarity. Author and film never change.
func (s *reviewService) UpdateReview(ctx context.Context, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	review, err := requireReview(ctx, s.repo, req.ReviewID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, validationError("content must not be blank")
		}
		review.Content = *req.Content
	}
	if req.IsPositive != nil {
		review.IsPositive = *req.IsPositive
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, notFoundError("review %d not found", review.ID)
		}
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.Int64("review_id", review.ID))
	s.events.Record(ctx, review.UserID, entity.EventTypeReview, entity.OperationUpdate, review.ID)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	review, err := requireReview(ctx, s.repo, id)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return notFoundError("review %d not found", id)
		}
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", id))
	s.events.Record(ctx, review.UserID, entity.EventTypeReview, entity.OperationRemove, id)
	return nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := requireReview(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, filmID *int64, count int) ([]response.ReviewResponse, error) {
	if count < 1 {
		return nil, validationError("count must be positive")
	}

	reviews, err := s.repo.Review.FindTop(ctx, filmID, count)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.Int("count", count))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

// AddLike also records a LIKE feed event keyed by the review id
func (s *reviewService) AddLike(ctx context.Context, reviewID, userID int64) error {
	if err := s.rate(ctx, reviewID, userID, true); err != nil {
		return err
	}

	s.events.Record(ctx, userID, entity.EventTypeLike, entity.OperationAdd, reviewID)
	return nil
}

func (s *reviewService) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return s.rate(ctx, reviewID, userID, false)
}

// RemoveLike drops the user's rating whatever its polarity
func (s *reviewService) RemoveLike(ctx context.Context, reviewID, userID int64) error {
	removed, err := s.unrate(ctx, reviewID, userID, nil)
	if err != nil {
		return err
	}

	if removed {
		s.events.Record(ctx, userID, entity.EventTypeLike, entity.OperationRemove, reviewID)
	}
	return nil
}

// RemoveDislike drops the user's rating only when it is a dislike
func (s *reviewService) RemoveDislike(ctx context.Context, reviewID, userID int64) error {
	dislike := false
	_, err := s.unrate(ctx, reviewID, userID, &dislike)
	return err
}

func (s *reviewService) rate(ctx context.Context, reviewID, userID int64, isLike bool) error {
	if err := s.requireReviewAndUser(ctx, reviewID, userID); err != nil {
		return err
	}

	if err := s.repo.ReviewRating.Upsert(ctx, reviewID, userID, isLike); err != nil {
		return fmt.Errorf("rate review: %w", err)
	}

	s.log.Debug("Review rated",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", userID),
		zap.Bool("is_like", isLike),
	)
	return nil
}

func (s *reviewService) unrate(ctx context.Context, reviewID, userID int64, isLike *bool) (bool, error) {
	if err := s.requireReviewAndUser(ctx, reviewID, userID); err != nil {
		return false, err
	}

	removed, err := s.repo.ReviewRating.Delete(ctx, reviewID, userID, isLike)
	if err != nil {
		return false, fmt.Errorf("remove review rating: %w", err)
	}
	return removed, nil
}

func (s *reviewService) requireReviewAndUser(ctx context.Context, reviewID, userID int64) error {
	if _, err := requireReview(ctx, s.repo, reviewID); err != nil {
		return err
	}
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return err
	}
	return nil
}
