package capacity

import "time"

type CreateRequestInput struct {
	RequiredDate    time.Time `json:"required_date" binding:"required"`
	RequiredSkills  []string  `json:"required_skills" binding:"required,min=1,dive,required"`
	Location        string    `json:"location" binding:"required"`
	EstimatedHours  float64   `json:"estimated_hours" binding:"gte=0"`
	VehicleRequired bool      `json:"vehicle_required"`
	VehicleType     string    `json:"vehicle_type"`
}

type ConfirmRequest struct {
	FreelancerID string `json:"freelancer_id" binding:"required"`
}

type RequestQuery struct {
	Status RequestStatus `form:"status"`
}
