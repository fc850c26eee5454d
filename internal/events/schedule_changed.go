package events

import (
	"encoding/json"
	"time"
)

const ScheduleChangesTopic = "scheduler.schedule.changes.v1"

// ScheduleFanoutChannel is the Redis channel carrying CellUpdate messages
// to API instances.
const ScheduleFanoutChannel = "schedule_changes"

const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

type ScheduleChangedEvent struct {
	EventType    string    `json:"event_type"`
	Table        string    `json:"table"`
	EntryID      string    `json:"entry_id"`
	GymID        string    `json:"gym_id"`
	ScheduleDate string    `json:"schedule_date"`
	ActorID      string    `json:"actor_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// CellUpdate is what subscribers receive for a changed cell. Entry is
// empty for deletions.
type CellUpdate struct {
	EventType string          `json:"event_type"`
	EntryID   string          `json:"entry_id"`
	GymID     string          `json:"gym_id"`
	DateKey   string          `json:"date_key"`
	Entry     json.RawMessage `json:"entry,omitempty"`
}
