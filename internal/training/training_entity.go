package training

import "time"

type Category string

const (
	CategorySafety     Category = "safety"
	CategoryCompliance Category = "compliance"
	CategorySkills     Category = "skills"
	CategoryOnboarding Category = "onboarding"
)

type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

const PriorityMandatory = "mandatory"

// DueWindow is the time an employee has, from the start date, to complete
// an onboarding training.
const DueWindow = 30 * 24 * time.Hour

type Assignment struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	TrainingID   string    `json:"training_id"`
	TrainingName string    `json:"training_name"`
	Category     Category  `json:"category"`
	DueDate      time.Time `json:"due_date"`
	AssignedDate time.Time `json:"assigned_date"`
	Status       Status    `json:"status"`
	Priority     string    `json:"priority"`
}

// Overdue reports whether the assignment is past due and not completed.
func (a Assignment) Overdue(now time.Time) bool {
	return a.Status != StatusCompleted && a.DueDate.Before(now)
}
