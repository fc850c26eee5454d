package user

type ListFilter struct {
	GymID string
	Role  string
}

type UpdateUserRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Role        *string  `json:"role" binding:"omitempty,oneof=admin head_setter setter"`
	PrimaryGyms []string `json:"primary_gyms" binding:"omitempty,dive,min=1,max=50"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	PrimaryGyms []string `json:"primary_gyms"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}
