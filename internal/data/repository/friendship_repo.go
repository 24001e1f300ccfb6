package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

// FriendshipRepository stores directed edges: user_id considers friend_id a friend.
type FriendshipRepository interface {
	Add(ctx context.Context, userID, friendID int64) (bool, error)
	Remove(ctx context.Context, userID, friendID int64) (bool, error)
	FindFriends(ctx context.Context, userID int64) ([]*entity.User, error)
	FindCommonFriends(ctx context.Context, userID, otherID int64) ([]*entity.User, error)
}

type friendshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFriendshipRepository(db database.PgxIface, log *zap.Logger) FriendshipRepository {
	return &friendshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "friendship")),
	}
}

// Add reports false when the edge already existed.
func (r *friendshipRepository) Add(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `
		INSERT INTO user_friendships (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, userID, friendID)
	if err != nil {
		r.log.Error("Failed to add friend",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return false, fmt.Errorf("failed to add friend: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Remove reports false when there was no edge to delete.
func (r *friendshipRepository) Remove(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `DELETE FROM user_friendships WHERE user_id = $1 AND friend_id = $2`

	result, err := r.db.Exec(ctx, query, userID, friendID)
	if err != nil {
		r.log.Error("Failed to remove friend",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return false, fmt.Errorf("failed to remove friend: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *friendshipRepository) FindFriends(ctx context.Context, userID int64) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.email, u.login, u.name, u.password, u.birthday
		FROM users u
		INNER JOIN user_friendships uf ON uf.friend_id = u.id
		WHERE uf.user_id = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find friends",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("failed to find friends: %w", err)
	}

	return collectUsers(rows)
}

func (r *friendshipRepository) FindCommonFriends(ctx context.Context, userID, otherID int64) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.email, u.login, u.name, u.password, u.birthday
		FROM users u
		INNER JOIN user_friendships a ON a.friend_id = u.id AND a.user_id = $1
		INNER JOIN user_friendships b ON b.friend_id = u.id AND b.user_id = $2
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, userID, otherID)
	if err != nil {
		r.log.Error("Failed to find common friends",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("other_id", otherID),
		)
		return nil, fmt.Errorf("failed to find common friends: %w", err)
	}

	return collectUsers(rows)
}
