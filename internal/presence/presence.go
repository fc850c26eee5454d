// Package presence implements the advisory per-cell soft lock. Clients
// announce that they are editing a cell and everyone else treats the cell
// as locked until the announcement goes stale.
package presence

import (
	"sort"
	"strconv"
	"time"
)

const (
	channelPrefix = "cell_presence:"

	DefaultActivityTimeout = 60 * time.Second
)

type Record struct {
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Timestamp    time.Time `json:"timestamp"`
	LastActivity time.Time `json:"lastActivity"`
	IsEditing    bool      `json:"isEditing"`
}

func CellID(gymID, dateKey string) string {
	return gymID + "-" + dateKey
}

// Channel is the pub/sub channel, and the Redis hash, for one cell.
func Channel(cellID string) string {
	return channelPrefix + cellID
}

type Policy struct {
	ActivityTimeout time.Duration
	Heartbeat       time.Duration
	Now             func() time.Time
}

func DefaultPolicy() Policy {
	return Policy{
		ActivityTimeout: DefaultActivityTimeout,
		Heartbeat:       DefaultActivityTimeout / 2,
	}
}

func (p Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p Policy) timeout() time.Duration {
	if p.ActivityTimeout <= 0 {
		return DefaultActivityTimeout
	}
	return p.ActivityTimeout
}

func (p Policy) heartbeat() time.Duration {
	if p.Heartbeat <= 0 {
		return p.timeout() / 2
	}
	return p.Heartbeat
}

type LockState string

const (
	Unlocked      LockState = "unlocked"
	LockedByOther LockState = "locked_by_other"
	HeldBySelf    LockState = "held_by_self"
)

const (
	BorderNeutral    = "neutral"
	BorderLocked     = "red"
	BorderMulticolor = "multicolor"
)

var palette = []string{"amber", "emerald", "sky", "purple", "rose"}

// Snapshot is the full presence state of one cell keyed by user id.
type Snapshot map[string]Record

// LockedByOther returns the other user holding the cell, if any. Records
// whose last activity is older than timeout do not lock.
func (s Snapshot) LockedByOther(self string, now time.Time, timeout time.Duration) (Record, bool) {
	for _, r := range s.sorted() {
		if r.UserID == self || !r.IsEditing {
			continue
		}
		if now.Sub(r.LastActivity) < timeout {
			return r, true
		}
	}
	return Record{}, false
}

func (s Snapshot) State(self string, now time.Time, timeout time.Duration) LockState {
	if _, locked := s.LockedByOther(self, now, timeout); locked {
		return LockedByOther
	}
	if r, ok := s[self]; ok && r.IsEditing {
		return HeldBySelf
	}
	return Unlocked
}

// Border is the visual signal for the viewer self.
func (s Snapshot) Border(self string) string {
	_, present := s[self]
	switch {
	case len(s) == 0:
		return BorderNeutral
	case len(s) == 1 && present:
		return UserColor(self)
	case !present:
		return BorderLocked
	default:
		return BorderMulticolor
	}
}

func (s Snapshot) sorted() []Record {
	out := make([]Record, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// UserColor picks a stable palette color from the last four hex digits of
// the user id.
func UserColor(userID string) string {
	tail := userID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	n, err := strconv.ParseUint(tail, 16, 32)
	if err != nil {
		return palette[0]
	}
	return palette[n%uint64(len(palette))]
}
