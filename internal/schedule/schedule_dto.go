package schedule

type SaveCellRequest struct {
	GymID    string   `json:"gym_id" binding:"required,max=50"`
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	Walls    []string `json:"walls" binding:"omitempty,dive,uuid"`
	Setters  []string `json:"setters" binding:"omitempty,dive,uuid"`
	Comments string   `json:"comments"`
	// Version is the entry version the client last saw. Nil for a new cell.
	Version *int `json:"version"`
}

type FailedSetter struct {
	SetterID string `json:"setter_id"`
	Reason   string `json:"reason"`
}

type SaveCellResponse struct {
	Cell          Cell           `json:"cell"`
	FailedSetters []FailedSetter `json:"failed_setters"`
}

type Day struct {
	Date    string `json:"date"`
	Key     string `json:"key"`
	Holiday string `json:"holiday,omitempty"`
}

type WindowResponse struct {
	Start string `json:"start"`
	Days  []Day  `json:"days"`
	Cells Window `json:"cells"`
}

// MineResponse is one setter's own bookings over a window.
type MineResponse struct {
	Start        string `json:"start"`
	Days         []Day  `json:"days"`
	Cells        []Cell `json:"cells"`
	Climbs       int    `json:"climbs"`
	VacationDays int    `json:"vacation_days"`
}

type ConflictsResponse struct {
	GymID     string   `json:"gym_id"`
	Date      string   `json:"date"`
	SetterIDs []string `json:"setter_ids"`
}

type ClearWeekResponse struct {
	Start   string `json:"start"`
	Cleared int    `json:"cleared"`
}

// SetterEntry is an entry a setter is booked on, as seen by time-off review.
type SetterEntry struct {
	EntryID string `json:"entry_id"`
	GymID   string `json:"gym_id"`
	Date    string `json:"date"`
}
