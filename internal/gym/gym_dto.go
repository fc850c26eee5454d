package gym

type CreateGymRequest struct {
	ID          string  `json:"id" binding:"required,max=50"`
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	PairedGymID *string `json:"paired_gym_id"`
}

type UpdateGymRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	PairedGymID *string `json:"paired_gym_id"`
	Active      *bool   `json:"active"`
}

type GymResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	PairedGymID *string `json:"paired_gym_id,omitempty"`
	Active      bool    `json:"active"`
}

type WallRequest struct {
	Name            string  `json:"name" binding:"required"`
	WallType        string  `json:"wall_type" binding:"required,oneof=boulder rope"`
	Difficulty      float64 `json:"difficulty" binding:"gte=0,lte=5.2"`
	ClimbsPerSetter float64 `json:"climbs_per_setter" binding:"gte=0"`
	Angle           *string `json:"angle" binding:"omitempty,oneof=Slab Vert Overhang Steep"`
	Active          *bool   `json:"active"`
}

type WallResponse struct {
	ID              string  `json:"id"`
	GymID           string  `json:"gym_id"`
	Name            string  `json:"name"`
	WallType        string  `json:"wall_type"`
	Difficulty      float64 `json:"difficulty"`
	ClimbsPerSetter float64 `json:"climbs_per_setter"`
	Angle           *string `json:"angle,omitempty"`
	Active          bool    `json:"active"`
}
