package schedule

import (
	"fmt"
	"math"

	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
)

type Metrics struct {
	Difficulty float64 `json:"difficulty"`
	Climbs     int     `json:"climbs"`
}

// CalculateMetrics averages the selected walls and scales the per-setter
// climb count by the number of setters. Wall ids missing from the catalog
// are skipped.
func CalculateMetrics(wallIDs, setterIDs []string, walls []gym.Wall) Metrics {
	if len(wallIDs) == 0 || len(setterIDs) == 0 {
		return Metrics{}
	}

	byID := make(map[string]gym.Wall, len(walls))
	for _, w := range walls {
		byID[w.ID.String()] = w
	}

	var difficulty, perSetter float64
	n := 0
	for _, id := range wallIDs {
		w, ok := byID[id]
		if !ok {
			continue
		}
		difficulty += w.Difficulty
		perSetter += w.ClimbsPerSetter
		n++
	}
	if n == 0 {
		return Metrics{}
	}

	return Metrics{
		Difficulty: roundHalfUp(difficulty/float64(n)*10) / 10,
		Climbs:     int(math.Ceil(perSetter/float64(n))) * len(setterIDs),
	}
}

// DifficultyColor maps a difficulty on the 1-5.2 scale to a translucent
// green-to-red CSS color.
func DifficultyColor(difficulty float64) string {
	normalized := (difficulty - 1) / 4.2

	var red, green int
	if normalized < 0.5 {
		green = 255
		red = int(roundHalfUp(normalized * 2 * 255))
	} else {
		green = int(roundHalfUp((1 - (normalized-0.5)*2) * 255))
		red = 255
	}

	return fmt.Sprintf("rgba(%d, %d, 0, 0.55)", red-25, green+25)
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
