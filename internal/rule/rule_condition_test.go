package rule_test

import (
	"testing"

	"go-integration/internal/rule"

	"github.com/stretchr/testify/assert"
)

func TestCondition_Holds(t *testing.T) {
	payload := map[string]any{
		"department": "Warehouse",
		"newSalary":  6000.0,
		"skills":     []any{"driving", "forklift"},
		"employee":   map[string]any{"contract": "full_time"},
		"headcount":  "12",
	}

	tests := []struct {
		name string
		cond rule.Condition
		want bool
	}{
		{"equals string", rule.Condition{Field: "department", Operator: rule.OperatorEquals, Value: "Warehouse"}, true},
		{"equals int vs float", rule.Condition{Field: "newSalary", Operator: rule.OperatorEquals, Value: 6000}, true},
		{"equals missing field", rule.Condition{Field: "missing", Operator: rule.OperatorEquals, Value: "x"}, false},
		{"not equals", rule.Condition{Field: "department", Operator: rule.OperatorNotEquals, Value: "Office"}, true},
		{"not equals missing field", rule.Condition{Field: "missing", Operator: rule.OperatorNotEquals, Value: "x"}, true},
		{"contains substring", rule.Condition{Field: "department", Operator: rule.OperatorContains, Value: "house"}, true},
		{"contains list item", rule.Condition{Field: "skills", Operator: rule.OperatorContains, Value: "forklift"}, true},
		{"contains absent item", rule.Condition{Field: "skills", Operator: rule.OperatorContains, Value: "welding"}, false},
		{"greater than", rule.Condition{Field: "newSalary", Operator: rule.OperatorGreaterThan, Value: 5000}, true},
		{"greater than equal is false", rule.Condition{Field: "newSalary", Operator: rule.OperatorGreaterThan, Value: 6000}, false},
		{"less than numeric string", rule.Condition{Field: "headcount", Operator: rule.OperatorLessThan, Value: 20}, true},
		{"less than non numeric", rule.Condition{Field: "department", Operator: rule.OperatorLessThan, Value: 20}, false},
		{"in list", rule.Condition{Field: "department", Operator: rule.OperatorIn, Value: []any{"Office", "Warehouse"}}, true},
		{"not in list", rule.Condition{Field: "department", Operator: rule.OperatorIn, Value: []string{"Office"}}, false},
		{"nested path", rule.Condition{Field: "employee.contract", Operator: rule.OperatorEquals, Value: "full_time"}, true},
		{"unknown operator", rule.Condition{Field: "department", Operator: "matches", Value: ".*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Holds(payload))
		})
	}
}

func TestRule_Matches(t *testing.T) {
	r := rule.Rule{Conditions: []rule.Condition{
		{Field: "amount", Operator: rule.OperatorGreaterThan, Value: 100},
		{Field: "currency", Operator: rule.OperatorEquals, Value: "RON"},
	}}

	assert.True(t, r.Matches(map[string]any{"amount": 150, "currency": "RON"}))
	assert.False(t, r.Matches(map[string]any{"amount": 150, "currency": "EUR"}))
	assert.True(t, rule.Rule{}.Matches(nil))
}
