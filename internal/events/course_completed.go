package events

import "time"

const CourseCompletedTopic = "lms.course.completed.v1"

type CourseCompletionEvent struct {
	EmployeeID    string     `json:"employee_id" binding:"required"`
	CourseID      string     `json:"course_id" binding:"required"`
	CourseName    string     `json:"course_name"`
	Category      string     `json:"category"`
	CompletedDate time.Time  `json:"completed_date"`
	Score         *float64   `json:"score,omitempty" binding:"omitempty,gte=0,lte=100"`
	CertificateID string     `json:"certificate_id,omitempty"`
	Skills        []string   `json:"skills" binding:"omitempty,dive,required"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
}
