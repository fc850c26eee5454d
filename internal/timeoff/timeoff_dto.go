package timeoff

import "github.com/SirTuppy/route-setter-scheduler/internal/schedule"

type CreateTimeOffRequest struct {
	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Type      string  `json:"type" binding:"required,oneof=vacation sick other"`
	Hours     float64 `json:"hours" binding:"gte=0,lte=999"`
	Reason    string  `json:"reason" binding:"max=500"`
}

type ApproveTimeOffRequest struct {
	// Acknowledged confirms the approver has seen the schedule conflicts.
	Acknowledged bool `json:"acknowledged"`
}

type DenyTimeOffRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type TimeOffResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	UserEmail    string  `json:"user_email"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Hours        float64 `json:"hours"`
	Reason       string  `json:"reason"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by"`
	DenialReason *string `json:"denial_reason"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ConflictsResponse struct {
	RequestID string                 `json:"request_id"`
	UserID    string                 `json:"user_id"`
	Conflicts []schedule.SetterEntry `json:"conflicts"`
}
