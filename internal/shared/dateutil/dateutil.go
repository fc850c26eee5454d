// Package dateutil canonicalizes calendar days so that one gym day always
// maps to the same key, whatever the time of day or timezone of the input.
package dateutil

import (
	"net/http"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"

	"github.com/teambition/rrule-go"
)

const (
	DBLayout  = "2006-01-02"
	KeyLayout = "2006-01-02T15:04:05.000Z"

	// anchorHour keeps a standardized day clear of the UTC midnight rollover.
	anchorHour = 6

	WindowSpanDays     = 14
	WindowBusinessDays = 10
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidDate,
	"invalid date, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

var ErrNotMonday = apperror.New(
	apperror.CodeInvalidDate,
	"start date must be a Monday",
	http.StatusBadRequest,
)

var ErrInvalidRange = apperror.New(
	apperror.CodeInvalidDate,
	"start date must be before or equal to end date",
	http.StatusBadRequest,
)

// Standardize returns the calendar day of t, read in t's own location,
// at 06:00 UTC.
func Standardize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, anchorHour, 0, 0, 0, time.UTC)
}

// Key is the cross-cell map key for the day of t.
func Key(t time.Time) string {
	return Standardize(t).Format(KeyLayout)
}

// DBDate is the YYYY-MM-DD form used in queries.
func DBDate(t time.Time) string {
	return Standardize(t).Format(DBLayout)
}

func ParseDBDate(s string) (time.Time, error) {
	t, err := time.Parse(DBLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return Standardize(t), nil
}

// ParseKey accepts either a map key or a YYYY-MM-DD date.
func ParseKey(s string) (time.Time, error) {
	if t, err := time.Parse(KeyLayout, s); err == nil {
		return Standardize(t), nil
	}
	return ParseDBDate(s)
}

func SameDay(a, b time.Time) bool {
	return Standardize(a).Equal(Standardize(b))
}

func IsWeekend(t time.Time) bool {
	wd := Standardize(t).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MondayOf returns the Monday of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	s := Standardize(t)
	offset := (int(s.Weekday()) + 6) % 7
	return s.AddDate(0, 0, -offset)
}

func ValidateExportStart(t time.Time) error {
	if Standardize(t).Weekday() != time.Monday {
		return ErrNotMonday
	}
	return nil
}

// Weekdays lists every Monday to Friday in [start, end].
func Weekdays(start, end time.Time) ([]time.Time, error) {
	from, to := Standardize(start), Standardize(end)
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   from,
		Until:     to,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}

// Window is the schedule grid anchored on the week of monday: ten business
// days spread over two calendar weeks.
func Window(monday time.Time) []time.Time {
	start := MondayOf(monday)
	days, err := Weekdays(start, start.AddDate(0, 0, WindowSpanDays-1))
	if err != nil {
		return nil
	}
	if len(days) > WindowBusinessDays {
		days = days[:WindowBusinessDays]
	}
	return days
}

// Range lists every calendar day in [start, end].
func Range(start, end time.Time) []time.Time {
	from, to := Standardize(start), Standardize(end)
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
