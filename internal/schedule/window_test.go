package schedule_test

import (
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellKey(t *testing.T) {
	d := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

	key := schedule.NewCellKey("planoTC", d)
	gymID, dateKey, ok := key.Split()

	require.True(t, ok)
	assert.Equal(t, schedule.CellKey("planoTC-2025-06-02T06:00:00.000Z"), key)
	assert.Equal(t, "planoTC", gymID)
	assert.Equal(t, "2025-06-02T06:00:00.000Z", dateKey)
}

func TestCellKey_HyphenatedGym(t *testing.T) {
	d := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	gymID, dateKey, ok := schedule.NewCellKey("fort-worth", d).Split()
	require.True(t, ok)
	assert.Equal(t, "fort-worth", gymID)
	assert.Equal(t, "2025-06-02T06:00:00.000Z", dateKey)

	gymID, dateKey, ok = schedule.CellKey("fort-worth-2025-06-02").Split()
	require.True(t, ok)
	assert.Equal(t, "fort-worth", gymID)
	assert.Equal(t, "2025-06-02", dateKey)

	_, _, ok = schedule.CellKey("fort-worth").Split()
	assert.False(t, ok)
	_, _, ok = schedule.CellKey("-2025-06-02").Split()
	assert.False(t, ok)
}

func TestConflictingSetters(t *testing.T) {
	june2, _ := dateutil.ParseDBDate("2025-06-02")
	june3, _ := dateutil.ParseDBDate("2025-06-03")

	window := schedule.Window{
		schedule.NewCellKey("design", june2):           {Setters: []string{"alice", "dan"}},
		schedule.NewCellKey("denton", june2):           {Setters: []string{"bob"}},
		schedule.NewCellKey("plano", june3):            {Setters: []string{"carol"}},
		schedule.NewCellKey(gym.VacationGymID, june2): {Setters: []string{"erin"}},
		schedule.NewCellKey("hill", june2):             {},
	}

	t.Run("setter booked at another gym is listed", func(t *testing.T) {
		got := schedule.ConflictingSetters("denton", june2, window)
		assert.Equal(t, []string{"alice", "dan", "erin"}, got)
	})

	t.Run("symmetric across gyms", func(t *testing.T) {
		both := schedule.Window{
			schedule.NewCellKey("a", june2): {Setters: []string{"x"}},
			schedule.NewCellKey("b", june2): {Setters: []string{"x"}},
		}
		assert.Contains(t, schedule.ConflictingSetters("a", june2, both), "x")
		assert.Contains(t, schedule.ConflictingSetters("b", june2, both), "x")
	})

	t.Run("symmetric with a hyphenated gym id", func(t *testing.T) {
		mixed := schedule.Window{
			schedule.NewCellKey("fort-worth", june2): {Setters: []string{"alice"}},
			schedule.NewCellKey("denton", june2):     {Setters: []string{"bob"}},
		}
		assert.Equal(t, []string{"alice"}, schedule.ConflictingSetters("denton", june2, mixed))
		assert.Equal(t, []string{"bob"}, schedule.ConflictingSetters("fort-worth", june2, mixed))
	})

	t.Run("other days are ignored", func(t *testing.T) {
		got := schedule.ConflictingSetters("denton", june3, window)
		assert.Empty(t, got)
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		evening := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)
		assert.Contains(t, schedule.ConflictingSetters("denton", evening, window), "alice")
	})
}
