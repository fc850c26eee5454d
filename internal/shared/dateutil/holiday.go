package dateutil

import (
	"sort"
	"time"
)

type Holiday struct {
	Date string `yaml:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Name string `yaml:"name" json:"name" validate:"required"`
}

// Calendar answers whether a day is a company holiday. Holiday cells are
// read-only in the schedule.
type Calendar struct {
	byKey map[string]Holiday
}

func NewCalendar(holidays []Holiday) (*Calendar, error) {
	c := &Calendar{byKey: make(map[string]Holiday, len(holidays))}
	for _, h := range holidays {
		d, err := ParseDBDate(h.Date)
		if err != nil {
			return nil, err
		}
		c.byKey[Key(d)] = h
	}
	return c, nil
}

func (c *Calendar) Holiday(t time.Time) (Holiday, bool) {
	if c == nil {
		return Holiday{}, false
	}
	h, ok := c.byKey[Key(t)]
	return h, ok
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.Holiday(t)
	return ok
}

// Between returns the holidays in [start, end] ordered by date.
func (c *Calendar) Between(start, end time.Time) []Holiday {
	if c == nil {
		return nil
	}
	from, to := Standardize(start), Standardize(end)
	var out []Holiday
	for _, h := range c.byKey {
		d, _ := ParseDBDate(h.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
