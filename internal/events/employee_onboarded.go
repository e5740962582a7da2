package events

import "time"

const EmployeeOnboardedTopic = "hr.employee.onboarded.v1"

const (
	ContractFullTime   = "full-time"
	ContractPartTime   = "part-time"
	ContractContractor = "contractor"
)

type EmployeeOnboardingEvent struct {
	EmployeeID        string    `json:"employee_id" binding:"required"`
	EmployeeName      string    `json:"employee_name"`
	Department        string    `json:"department" binding:"required"`
	Position          string    `json:"position"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	Manager           string    `json:"manager,omitempty"`
	RequiredTrainings []string  `json:"required_trainings,omitempty"`
	ContractType      string    `json:"contract_type" binding:"omitempty,oneof=full-time part-time contractor"`
}
