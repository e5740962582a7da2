package events

import "time"

const SalaryChangedTopic = "hr.salary.changed.v1"

type SalaryChangeEvent struct {
	EmployeeID     string    `json:"employee_id" binding:"required"`
	PreviousSalary float64   `json:"previous_salary" binding:"gte=0"`
	NewSalary      float64   `json:"new_salary" binding:"required,gt=0"`
	Currency       string    `json:"currency" binding:"required,len=3"`
	EffectiveDate  time.Time `json:"effective_date"`
	Reason         string    `json:"reason"`
}
