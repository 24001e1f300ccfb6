package repository

import (
	"context"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) (bool, error)
	Remove(ctx context.Context, filmID, userID int64) (bool, error)
	// FindAllByUser returns every user's liked film ids.
	FindAllByUser(ctx context.Context) (map[int64]map[int64]struct{}, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

// Add reports false when the user already liked the film.
func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) (bool, error) {
	query := `
		INSERT INTO film_likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, filmID, userID)
	if err != nil {
		r.log.Error("Failed to add like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) (bool, error) {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, filmID, userID)
	if err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) FindAllByUser(ctx context.Context) (map[int64]map[int64]struct{}, error) {
	query := `SELECT user_id, film_id FROM film_likes`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load likes", zap.Error(err))
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}
	defer rows.Close()

	likes := make(map[int64]map[int64]struct{})
	for rows.Next() {
		var userID, filmID int64
		if err := rows.Scan(&userID, &filmID); err != nil {
			r.log.Error("Failed to scan like row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		if likes[userID] == nil {
			likes[userID] = make(map[int64]struct{})
		}
		likes[userID][filmID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return likes, nil
}
