package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Matches reports whether every condition holds against payload. A rule
// without conditions always matches.
func (r Rule) Matches(payload map[string]any) bool {
	for _, c := range r.Conditions {
		if !c.Holds(payload) {
			return false
		}
	}
	return true
}

func (c Condition) Holds(payload map[string]any) bool {
	actual, found := lookup(payload, c.Field)

	switch c.Operator {
	case OperatorEquals:
		return found && valuesEqual(actual, c.Value)
	case OperatorNotEquals:
		return !found || !valuesEqual(actual, c.Value)
	case OperatorContains:
		return found && contains(actual, c.Value)
	case OperatorGreaterThan:
		a, okA := toFloat(actual)
		b, okB := toFloat(c.Value)
		return found && okA && okB && a > b
	case OperatorLessThan:
		a, okA := toFloat(actual)
		b, okB := toFloat(c.Value)
		return found && okA && okB && a < b
	case OperatorIn:
		return found && contains(c.Value, actual)
	}
	return false
}

func lookup(payload map[string]any, path string) (any, bool) {
	var cur any = payload
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func valuesEqual(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// contains handles substring checks on strings and membership on lists.
func contains(haystack, needle any) bool {
	switch h := haystack.(type) {
	case string:
		return strings.Contains(h, fmt.Sprint(needle))
	case []any:
		for _, item := range h {
			if valuesEqual(item, needle) {
				return true
			}
		}
	case []string:
		for _, item := range h {
			if valuesEqual(item, needle) {
				return true
			}
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
