package repository

import (
	"context"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

type ReviewRatingRepository interface {
	// Upsert records a like (true) or dislike (false), replacing any earlier rating by the user.
	Upsert(ctx context.Context, reviewID, userID int64, isLike bool) error
	// Delete removes the user's rating. A non-nil isLike restricts it to that polarity.
	Delete(ctx context.Context, reviewID, userID int64, isLike *bool) (bool, error)
}

type reviewRatingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRatingRepository(db database.PgxIface, log *zap.Logger) ReviewRatingRepository {
	return &reviewRatingRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_rating")),
	}
}

func (r *reviewRatingRepository) Upsert(ctx context.Context, reviewID, userID int64, isLike bool) error {
	query := `
		INSERT INTO review_ratings (review_id, user_id, is_like)
		VALUES ($1, $2, $3)
		ON CONFLICT (review_id, user_id) DO UPDATE SET is_like = EXCLUDED.is_like
	`

	if _, err := r.db.Exec(ctx, query, reviewID, userID, isLike); err != nil {
		r.log.Error("Failed to rate review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("user_id", userID),
			zap.Bool("is_like", isLike),
		)
		return fmt.Errorf("failed to rate review: %w", err)
	}

	return nil
}

func (r *reviewRatingRepository) Delete(ctx context.Context, reviewID, userID int64, isLike *bool) (bool, error) {
	query := `DELETE FROM review_ratings WHERE review_id = $1 AND user_id = $2`
	args := []any{reviewID, userID}

	if isLike != nil {
		query += ` AND is_like = $3`
		args = append(args, *isLike)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to remove review rating",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("failed to remove review rating: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
