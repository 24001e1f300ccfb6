package entity

type EventType string

const (
	EventTypeLike   EventType = "LIKE"
	EventTypeReview EventType = "REVIEW"
	EventTypeFriend EventType = "FRIEND"
)

type Operation string

const (
	OperationAdd    Operation = "ADD"
	OperationRemove Operation = "REMOVE"
	OperationUpdate Operation = "UPDATE"
)

// Event is one entry of a user's activity feed.
type Event struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	EventType EventType `db:"event_type"`
	Operation Operation `db:"operation"`
	EntityID  int64     `db:"entity_id"`
	Timestamp int64     `db:"created_ms"` // epoch millis
}
