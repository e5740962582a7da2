package rule

import (
	"fmt"
	"os"

	"go-integration/internal/domain"
	"go-integration/internal/events"

	"gopkg.in/yaml.v3"
)

func boolPtr(v bool) *bool { return &v }

// DefaultRules are seeded at start-up.
func DefaultRules() []CreateRuleRequest {
	return []CreateRuleRequest{
		{
			Name:         "Auto-assign Safety Training",
			Description:  "Automatically assign mandatory safety trainings when an employee is onboarded",
			SourceModule: string(domain.ModuleHR),
			TargetModule: string(domain.ModuleHSE),
			TriggerEvent: events.TriggerEmployeeOnboarded,
			Enabled:      boolPtr(true),
			Actions: []Action{{
				Type:    ActionTriggerWorkflow,
				Target:  "assign_safety_training",
				Mapping: map[string]string{"employeeId": "employeeId"},
			}},
			Priority: 100,
		},
		{
			Name:         "Sync Salary to Payroll",
			Description:  "Automatically create payroll entry when salary changes",
			SourceModule: string(domain.ModuleHR),
			TargetModule: string(domain.ModulePayroll),
			TriggerEvent: events.TriggerSalaryChanged,
			Enabled:      boolPtr(true),
			Actions: []Action{{
				Type:    ActionCreate,
				Target:  "PayrollEntry",
				Mapping: map[string]string{"employeeId": "employeeId", "amount": "newSalary"},
			}},
			Priority: 90,
		},
		{
			Name:         "Update Competencies on Course Completion",
			Description:  "Update employee competency matrix when a course is completed",
			SourceModule: string(domain.ModuleLMS),
			TargetModule: string(domain.ModuleHR),
			TriggerEvent: events.TriggerCourseCompleted,
			Enabled:      boolPtr(true),
			Actions: []Action{{
				Type:    ActionUpdate,
				Target:  "CompetencyMatrix",
				Mapping: map[string]string{"employeeId": "employeeId", "skills": "skills"},
			}},
			Priority: 80,
		},
	}
}

type seedFile struct {
	Rules []CreateRuleRequest `yaml:"rules"`
}

// LoadSeedFile reads additional rules from a YAML document of the form
// `rules: [...]`.
func LoadSeedFile(path string) ([]CreateRuleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rule seed file: %w", err)
	}
	return f.Rules, nil
}
