package dashboard

import (
	"math"
	"time"

	"go-integration/internal/domain"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type HRMetrics struct {
	TotalEmployees    int     `json:"total_employees"`
	NewHires          int     `json:"new_hires"`
	TurnoverRate      float64 `json:"turnover_rate"`
	PendingOnboarding int     `json:"pending_onboarding"`
}

type HSEMetrics struct {
	OpenIncidents    int       `json:"open_incidents"`
	OverdueTrainings int       `json:"overdue_trainings"`
	ComplianceScore  int       `json:"compliance_score"`
	RiskLevel        RiskLevel `json:"risk_level"`
}

type FinanceMetrics struct {
	MonthlyPayroll    float64 `json:"monthly_payroll"`
	PendingPayments   int     `json:"pending_payments"`
	CashFlow          float64 `json:"cash_flow"`
	BudgetUtilization float64 `json:"budget_utilization"`
}

type LogisticsMetrics struct {
	ActiveDeliveries    int     `json:"active_deliveries"`
	CapacityUtilization float64 `json:"capacity_utilization"`
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
	FreelancerCount     int     `json:"freelancer_count"`
}

type LMSMetrics struct {
	ActiveCourses          int     `json:"active_courses"`
	CompletionRate         float64 `json:"completion_rate"`
	AverageScore           float64 `json:"average_score"`
	CertificationsExpiring int     `json:"certifications_expiring"`
}

type Metrics struct {
	Timestamp time.Time        `json:"timestamp"`
	HR        HRMetrics        `json:"hr"`
	HSE       HSEMetrics       `json:"hse"`
	Finance   FinanceMetrics   `json:"finance"`
	Logistics LogisticsMetrics `json:"logistics"`
	LMS       LMSMetrics       `json:"lms"`
}

type ModuleStatus struct {
	Name      domain.Module `json:"name"`
	Connected bool          `json:"connected"`
}

type IntegrationStatus struct {
	EventsProcessed int            `json:"events_processed"`
	PendingEvents   int            `json:"pending_events"`
	ActiveRules     int            `json:"active_rules"`
	AuditEntries    int            `json:"audit_entries"`
	Modules         []ModuleStatus `json:"modules"`
}

func riskLevel(overdue int) RiskLevel {
	switch {
	case overdue > 10:
		return RiskHigh
	case overdue > 5:
		return RiskMedium
	default:
		return RiskLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percent returns part/whole*100 rounded to one decimal, or fallback when
// whole is zero.
func percent(part, whole int, fallback float64) float64 {
	if whole == 0 {
		return fallback
	}
	return round1(float64(part) / float64(whole) * 100)
}
