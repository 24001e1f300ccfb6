package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/response"

	"go.uber.org/zap"
)

// FriendService manages directed friendship edges.
type FriendService interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error)
}

type friendService struct {
	repo   *repository.Repository
	events EventService
	log    *zap.Logger
}

func NewFriendService(repo *repository.Repository, events EventService, log *zap.Logger) FriendService {
	return &friendService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "friend")),
	}
}

func (s *friendService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requirePair(ctx, userID, friendID); err != nil {
		return err
	}
	if userID == friendID {
		return validationError("user %d cannot befriend themselves", userID)
	}

	added, err := s.repo.Friendship.Add(ctx, userID, friendID)
	if err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	if !added {
		return conflictError("user %d is already friends with %d", userID, friendID)
	}

	s.log.Info("Friend added",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	s.events.Record(ctx, userID, entity.EventTypeFriend, entity.OperationAdd, friendID)
	return nil
}

// RemoveFriend is a no-op when the edge does not exist.
func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requirePair(ctx, userID, friendID); err != nil {
		return err
	}

	removed, err := s.repo.Friendship.Remove(ctx, userID, friendID)
	if err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	if !removed {
		return nil
	}

	s.events.Record(ctx, userID, entity.EventTypeFriend, entity.OperationRemove, friendID)
	return nil
}

func (s *friendService) GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error) {
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	friends, err := s.repo.Friendship.FindFriends(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get friends", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get friends: %w", err)
	}

	return response.UsersToResponse(friends), nil
}

func (s *friendService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error) {
	if err := s.requirePair(ctx, userID, otherID); err != nil {
		return nil, err
	}

	friends, err := s.repo.Friendship.FindCommonFriends(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("get common friends: %w", err)
	}

	return response.UsersToResponse(friends), nil
}

func (s *friendService) requirePair(ctx context.Context, userID, otherID int64) error {
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return err
	}
	if _, err := requireUser(ctx, s.repo, otherID); err != nil {
		return err
	}
	return nil
}
