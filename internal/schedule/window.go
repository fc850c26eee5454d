package schedule

import (
	"sort"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
)

// CellKey identifies one gym on one day: "{gymId}-{dateKey}".
type CellKey string

func NewCellKey(gymID string, date time.Time) CellKey {
	return CellKey(gymID + "-" + dateutil.Key(date))
}

// Split separates the gym id from the trailing date, which is either a
// map key or YYYY-MM-DD. Gym ids may contain hyphens themselves.
func (k CellKey) Split() (gymID, dateKey string, ok bool) {
	s := string(k)
	for _, layout := range []string{dateutil.KeyLayout, dateutil.DBLayout} {
		n := len(layout)
		if len(s) < n+2 || s[len(s)-n-1] != '-' {
			continue
		}
		suffix := s[len(s)-n:]
		if _, err := time.Parse(layout, suffix); err != nil {
			continue
		}
		return s[:len(s)-n-1], suffix, true
	}
	return "", "", false
}

type Cell struct {
	EntryID    string   `json:"entry_id,omitempty"`
	GymID      string   `json:"gym_id"`
	Date       string   `json:"date"`
	DateKey    string   `json:"date_key"`
	Walls      []string `json:"walls"`
	Setters    []string `json:"setters"`
	Comments   string   `json:"comments"`
	Version    int      `json:"version"`
	Metrics    Metrics  `json:"metrics"`
	Color      string   `json:"color,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
	HolidayFor string   `json:"holiday,omitempty"`
}

// Window is the visible slice of the schedule keyed by cell.
type Window map[CellKey]Cell

// ConflictingSetters lists setters booked at any other gym on the same day,
// the vacation pseudo-gym included.
func ConflictingSetters(gymID string, date time.Time, window Window) []string {
	target := dateutil.Key(date)
	seen := make(map[string]struct{})

	for key, cell := range window {
		entryGym, entryDate, ok := key.Split()
		if !ok {
			continue
		}
		if entryDate != target || entryGym == gymID {
			continue
		}
		for _, id := range cell.Setters {
			seen[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
