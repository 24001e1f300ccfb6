package response

import (
	"filmorate/internal/data/entity"
)

type EventResponse struct {
	EventID   int64  `json:"eventId"`
	UserID    int64  `json:"userId"`
	EventType string `json:"eventType"`
	Operation string `json:"operation"`
	EntityID  int64  `json:"entityId"`
	Timestamp int64  `json:"timestamp"`
}

func EventsToResponse(events []*entity.Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, event := range events {
		result[i] = EventResponse{
			EventID:   event.ID,
			UserID:    event.UserID,
			EventType: string(event.EventType),
			Operation: string(event.Operation),
			EntityID:  event.EntityID,
			Timestamp: event.Timestamp,
		}
	}
	return result
}
