package capacity

import "time"

type RequestStatus string

const (
	StatusOpen        RequestStatus = "open"
	StatusMatched     RequestStatus = "matched"
	StatusConfirmed   RequestStatus = "confirmed"
	StatusUnfulfilled RequestStatus = "unfulfilled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusMatched, StatusConfirmed, StatusUnfulfilled:
		return true
	}
	return false
}

type Availability struct {
	FreelancerID   string    `json:"freelancer_id" binding:"required"`
	FreelancerName string    `json:"freelancer_name"`
	Skills         []string  `json:"skills" binding:"required,min=1,dive,required"`
	AvailableFrom  time.Time `json:"available_from"`
	AvailableTo    time.Time `json:"available_to"`
	HourlyRate     float64   `json:"hourly_rate" binding:"gte=0"`
	Currency       string    `json:"currency"`
	Location       string    `json:"location" binding:"required"`
	VehicleType    string    `json:"vehicle_type,omitempty"`
	HasOwnVehicle  bool      `json:"has_own_vehicle"`
}

type Request struct {
	ID                 string        `json:"id"`
	RequestDate        time.Time     `json:"request_date"`
	RequiredDate       time.Time     `json:"required_date"`
	RequiredSkills     []string      `json:"required_skills"`
	Location           string        `json:"location"`
	EstimatedHours     float64       `json:"estimated_hours"`
	VehicleRequired    bool          `json:"vehicle_required"`
	VehicleType        string        `json:"vehicle_type,omitempty"`
	Status             RequestStatus `json:"status"`
	MatchedFreelancers []string      `json:"matched_freelancers"`
}

func (r Request) hasMatched(freelancerID string) bool {
	for _, id := range r.MatchedFreelancers {
		if id == freelancerID {
			return true
		}
	}
	return false
}
