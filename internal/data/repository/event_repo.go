package repository

import (
	"context"
	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"fmt"

	"go.uber.org/zap"
)

// EventRepository is append-only.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Event, error)
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (user_id, event_type, operation, entity_id, created_ms)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.EventType,
		event.Operation,
		event.EntityID,
		event.Timestamp,
	).Scan(&event.ID)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.Int64("user_id", event.UserID),
			zap.String("event_type", string(event.EventType)),
			zap.String("operation", string(event.Operation)),
		)
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *eventRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Event, error) {
	query := `
		SELECT id, user_id, event_type, operation, entity_id, created_ms
		FROM events
		WHERE user_id = $1
		ORDER BY created_ms ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find events",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	defer rows.Close()

	events := []*entity.Event{}
	for rows.Next() {
		var event entity.Event
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.EventType,
			&event.Operation,
			&event.EntityID,
			&event.Timestamp,
		)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return events, nil
}
