package competency

import (
	"strings"
	"time"
)

const SourceCourse = "course"

type Update struct {
	EmployeeID     string    `json:"employee_id"`
	CompetencyID   string    `json:"competency_id"`
	CompetencyName string    `json:"competency_name"`
	PreviousLevel  int       `json:"previous_level"`
	NewLevel       int       `json:"new_level"`
	Source         string    `json:"source"`
	EvidenceID     string    `json:"evidence_id"`
	UpdatedDate    time.Time `json:"updated_date"`
}

type MatrixEntry struct {
	Competency  string    `json:"competency"`
	Level       int       `json:"level"`
	LastUpdated time.Time `json:"last_updated"`
}

// Completion is the course completion an update batch was derived from.
type Completion struct {
	EmployeeID    string     `json:"employee_id"`
	CourseID      string     `json:"course_id"`
	CourseName    string     `json:"course_name"`
	Score         *float64   `json:"score,omitempty"`
	CertificateID string     `json:"certificate_id,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	CompletedDate time.Time  `json:"completed_date"`
}

func competencyID(skill string) string {
	return "comp-" + strings.Join(strings.Fields(strings.ToLower(skill)), "-")
}

// LevelForScore maps a course score to a 1..5 competency level. A missing or
// zero score counts as level 1.
func LevelForScore(score *float64) int {
	if score == nil || *score == 0 {
		return 1
	}
	switch s := *score; {
	case s >= 90:
		return 5
	case s >= 75:
		return 4
	case s >= 60:
		return 3
	case s >= 40:
		return 2
	default:
		return 1
	}
}

// buildMatrix keeps the latest level per competency, ordered by the first
// time each competency appeared.
func buildMatrix(updates []Update) []MatrixEntry {
	index := make(map[string]int)
	matrix := make([]MatrixEntry, 0)
	for _, u := range updates {
		entry := MatrixEntry{Competency: u.CompetencyName, Level: u.NewLevel, LastUpdated: u.UpdatedDate}
		if i, ok := index[u.CompetencyName]; ok {
			matrix[i] = entry
			continue
		}
		index[u.CompetencyName] = len(matrix)
		matrix = append(matrix, entry)
	}
	return matrix
}
