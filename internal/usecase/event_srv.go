package usecase

import (
	"context"
	"fmt"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/response"
	"filmorate/pkg/metrics"

	"go.uber.org/zap"
)

type EventService interface {
	// Record appends a feed event. Failures are logged, never returned.
	Record(ctx context.Context, userID int64, eventType entity.EventType, op entity.Operation, entityID int64)
	GetFeed(ctx context.Context, userID int64) ([]response.EventResponse, error)
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
		now:  time.Now,
	}
}

func (s *eventService) Record(ctx context.Context, userID int64, eventType entity.EventType, op entity.Operation, entityID int64) {
	event := &entity.Event{
		UserID:    userID,
		EventType: eventType,
		Operation: op,
		EntityID:  entityID,
		Timestamp: s.now().UnixMilli(),
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		// the triggering write already succeeded
		s.log.Warn("Failed to record event",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("event_type", string(eventType)),
			zap.String("operation", string(op)),
			zap.Int64("entity_id", entityID),
		)
		return
	}

	metrics.RecordFeedEvent(string(eventType), string(op))
}

func (s *eventService) GetFeed(ctx context.Context, userID int64) ([]response.EventResponse, error) {
	if _, err := requireUser(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	events, err := s.repo.Event.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get feed", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get feed: %w", err)
	}

	return response.EventsToResponse(events), nil
}
