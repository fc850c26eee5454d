package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
)

const (
	PeriodDays     = 14
	RowsPerSection = 14
	Placeholder    = "—"
)

type Row struct {
	Number    int    `json:"number"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	ClimbType string `json:"climb_type"`
	Setters   string `json:"setters"`
}

type Section struct {
	WallType string `json:"wall_type"`
	Rows     []Row  `json:"rows"`
}

// YellowPage is the printable two-week sheet for one gym. Rope rows come
// first and exist only when the gym has rope walls.
type YellowPage struct {
	GymID     string    `json:"gym_id"`
	GymName   string    `json:"gym_name"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	DateRange string    `json:"date_range"`
	Sections  []Section `json:"sections"`
}

// BuildYellowPage lays out the sheet for the fourteen days from start,
// which must be a Monday. Entries of other gyms are ignored.
func BuildYellowPage(gymID, gymName string, start time.Time, walls []gym.Wall, entries []schedule.Entry) (YellowPage, error) {
	start = dateutil.Standardize(start)
	if err := dateutil.ValidateExportStart(start); err != nil {
		return YellowPage{}, err
	}
	end := start.AddDate(0, 0, PeriodDays-1)

	wallsByID := make(map[string]gym.Wall, len(walls))
	hasRope := false
	for _, w := range walls {
		wallsByID[w.ID.String()] = w
		if w.IsRope() {
			hasRope = true
		}
	}

	byDate := make(map[string]schedule.Entry)
	for _, e := range entries {
		if e.GymID == gymID {
			byDate[dateutil.DBDate(e.ScheduleDate)] = e
		}
	}

	days := dateutil.Range(start, end)
	page := YellowPage{
		GymID:     gymID,
		GymName:   gymName,
		Start:     dateutil.DBDate(start),
		End:       dateutil.DBDate(end),
		DateRange: shortDate(start) + "-" + shortDate(end),
	}

	first := 1
	if hasRope {
		page.Sections = append(page.Sections, buildSection(gym.WallTypeRope, first, days, byDate, wallsByID))
		first += RowsPerSection
	}
	page.Sections = append(page.Sections, buildSection(gym.WallTypeBoulder, first, days, byDate, wallsByID))
	return page, nil
}

func buildSection(wallType string, first int, days []time.Time, byDate map[string]schedule.Entry, walls map[string]gym.Wall) Section {
	sec := Section{WallType: wallType}
	for i, d := range days {
		if i >= RowsPerSection {
			break
		}
		row := Row{
			Number:    first + i,
			Date:      shortDate(d),
			Location:  Placeholder,
			ClimbType: Placeholder,
			Setters:   Placeholder,
		}

		if e, ok := byDate[dateutil.DBDate(d)]; ok {
			var names, angles []string
			for _, id := range e.WallIDs() {
				w, ok := walls[id]
				if !ok || w.WallType != wallType {
					continue
				}
				names = append(names, w.Name)
				if w.Angle != nil && *w.Angle != "" {
					angles = append(angles, *w.Angle)
				} else {
					angles = append(angles, Placeholder)
				}
			}
			if len(names) > 0 {
				row.Location = strings.Join(names, ", ")
				row.ClimbType = strings.Join(angles, ", ")
				row.Setters = strconv.Itoa(len(e.Setters))
			}
		}
		sec.Rows = append(sec.Rows, row)
	}
	return sec
}

// shortDate formats d as M/D.
func shortDate(d time.Time) string {
	return fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
}
