package events

import "time"

const TimeOffChangesTopic = "scheduler.timeoff.changes.v1"

const (
	TimeOffCreated  = "timeoff.created"
	TimeOffApproved = "timeoff.approved"
	TimeOffDenied   = "timeoff.denied"
)

type TimeOffChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
