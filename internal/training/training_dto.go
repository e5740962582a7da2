package training

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=assigned in_progress completed overdue"`
}

type OnboardingResponse struct {
	EmployeeID  string       `json:"employee_id"`
	Assignments []Assignment `json:"assignments"`
}
