package crew

type CreateCrewRequest struct {
	Name   string   `json:"name" binding:"required"`
	GymIDs []string `json:"gym_ids"`
}

type UpdateCrewRequest struct {
	Name   string   `json:"name" binding:"required"`
	GymIDs []string `json:"gym_ids"`
}

// AssignLeadRequest sets or clears (null user_id) a crew lead.
type AssignLeadRequest struct {
	UserID *string `json:"user_id" binding:"omitempty,uuid"`
}

type MemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CrewResponse struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	HeadSetterID          *string  `json:"head_setter_id"`
	AssistantHeadSetterID *string  `json:"assistant_head_setter_id"`
	GymIDs                []string `json:"gym_ids"`
	MemberIDs             []string `json:"member_ids"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
}
