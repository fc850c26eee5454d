package presence

type Occupant struct {
	Record
	Color string `json:"color"`
}

// View is a cell's presence as seen by one caller.
type View struct {
	CellID    string     `json:"cell_id"`
	State     LockState  `json:"state"`
	Border    string     `json:"border"`
	Locked    bool       `json:"locked"`
	LockedBy  *Record    `json:"locked_by,omitempty"`
	ReadOnly  bool       `json:"read_only"`
	Occupants []Occupant `json:"occupants"`
}
