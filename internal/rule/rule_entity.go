package rule

import (
	"time"

	"go-integration/internal/domain"
)

type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorIn          Operator = "in"
)

func (o Operator) Valid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals, OperatorContains,
		OperatorGreaterThan, OperatorLessThan, OperatorIn:
		return true
	}
	return false
}

type ActionType string

const (
	ActionCreate          ActionType = "create"
	ActionUpdate          ActionType = "update"
	ActionDelete          ActionType = "delete"
	ActionNotify          ActionType = "notify"
	ActionTriggerWorkflow ActionType = "trigger_workflow"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionNotify, ActionTriggerWorkflow:
		return true
	}
	return false
}

// Condition tests one payload field. Field may be a dotted path into nested
// objects.
type Condition struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    any      `json:"value" yaml:"value"`
}

type Action struct {
	Type    ActionType        `json:"type" yaml:"type"`
	Target  string            `json:"target" yaml:"target"`
	Mapping map[string]string `json:"mapping,omitempty" yaml:"mapping"`
}

// Rule describes an intended automation between two modules. Rules are
// resolved against events but never execute workflows themselves.
type Rule struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string        `json:"name" gorm:"uniqueIndex:uq_integration_rule_name"`
	Description  string        `json:"description"`
	SourceModule domain.Module `json:"source_module"`
	TargetModule domain.Module `json:"target_module"`
	TriggerEvent string        `json:"trigger_event" gorm:"index"`
	Enabled      bool          `json:"enabled"`
	Conditions   []Condition   `json:"conditions" gorm:"serializer:json"`
	Actions      []Action      `json:"actions" gorm:"serializer:json"`
	Priority     int           `json:"priority"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Rule) TableName() string {
	return "integration_rules"
}
