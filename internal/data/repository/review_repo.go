package repository

import (
	"context"
	"fmt"
	"strings"

	"filmorate/internal/data/entity"
	"filmorate/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindTop(ctx context.Context, filmID *int64, count int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
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

// useful is re-aggregated from review_ratings on every read
const reviewSelect = `
		SELECT r.id, r.content, r.is_positive, r.user_id, r.film_id,
		       COALESCE(SUM(CASE WHEN rr.is_like THEN 1 WHEN NOT rr.is_like THEN -1 ELSE 0 END), 0) AS useful
		FROM reviews r
		LEFT JOIN review_ratings rr ON rr.review_id = r.id
`

const reviewGroupBy = ` GROUP BY r.id`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (content, is_positive, user_id, film_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.Content,
		review.IsPositive,
		review.UserID,
		review.FilmID,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("film_id", review.FilmID),
		)
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := reviewSelect + ` WHERE r.id = $1` + reviewGroupBy

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return review, nil
}

// FindTop lists reviews by usefulness, optionally for a single film.
func (r *reviewRepository) FindTop(ctx context.Context, filmID *int64, count int) ([]*entity.Review, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(reviewSelect)

	args := []any{}
	if filmID != nil {
		queryBuilder.WriteString(` WHERE r.film_id = $1`)
		args = append(args, *filmID)
	}
	queryBuilder.WriteString(reviewGroupBy)
	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY useful DESC, r.id ASC LIMIT $%d`, len(args)+1))
	args = append(args, count)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.Int("count", count),
		)
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return reviews, nil
}

// Update changes content and polarity only. Author and film are fixed.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `UPDATE reviews SET content = $2, is_positive = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, review.ID, review.Content, review.IsPositive)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.Content,
		&review.IsPositive,
		&review.UserID,
		&review.FilmID,
		&review.Useful,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
