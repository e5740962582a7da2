package dashboard

import (
	"testing"
	"time"

	"go-integration/internal/capacity"
	"go-integration/internal/competency"
	"go-integration/internal/finance"
	"go-integration/internal/payroll"
	"go-integration/internal/training"

	"github.com/stretchr/testify/assert"
)

func assignment(emp string, status training.Status, assigned, due time.Time) training.Assignment {
	return training.Assignment{EmployeeID: emp, Status: status, AssignedDate: assigned, DueDate: due}
}

func TestDerive(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	score90, score70 := 90.0, 70.0
	soon := now.Add(10 * 24 * time.Hour)
	later := now.Add(60 * 24 * time.Hour)

	snap := snapshot{
		assignments: []training.Assignment{
			assignment("EMP-1", training.StatusAssigned, now, future),
			assignment("EMP-1", training.StatusCompleted, now, past),
			assignment("EMP-2", training.StatusInProgress, lastMonth, past),
			assignment("EMP-2", training.StatusCompleted, lastMonth, future),
		},
		payroll: []payroll.Entry{
			{EmployeeID: "EMP-2", GrossSalary: 6000},
			{EmployeeID: "EMP-3", GrossSalary: 4000},
		},
		transactions: []finance.Transaction{
			{Type: finance.TypePayroll, Amount: 10000, Status: finance.StatusPending},
			{Type: finance.TypeExpense, Amount: 2500, Status: finance.StatusPosted},
			{Type: finance.TypeRevenue, Amount: 20000, Status: finance.StatusPending},
		},
		requests: []capacity.Request{
			{Status: capacity.StatusOpen},
			{Status: capacity.StatusMatched},
			{Status: capacity.StatusConfirmed},
			{Status: capacity.StatusUnfulfilled},
		},
		freelancers: []capacity.Availability{{FreelancerID: "f1"}, {FreelancerID: "f2"}},
		completions: []competency.Completion{
			{CourseID: "c1", Score: &score90, CertificateID: "CERT-1", ValidUntil: &soon},
			{CourseID: "c1", Score: &score70},
			{CourseID: "c2", CertificateID: "CERT-2", ValidUntil: &later},
		},
	}

	m := derive(snap, now, 50000)

	assert.Equal(t, now, m.Timestamp)

	assert.Equal(t, 3, m.HR.TotalEmployees)
	assert.Equal(t, 1, m.HR.NewHires)
	assert.Equal(t, 1, m.HR.PendingOnboarding)
	assert.Zero(t, m.HR.TurnoverRate)

	assert.Equal(t, 1, m.HSE.OverdueTrainings)
	assert.Equal(t, 50, m.HSE.ComplianceScore)
	assert.Equal(t, RiskLow, m.HSE.RiskLevel)
	assert.Zero(t, m.HSE.OpenIncidents)

	assert.Equal(t, 10000.0, m.Finance.MonthlyPayroll)
	assert.Equal(t, 2, m.Finance.PendingPayments)
	assert.Equal(t, 7500.0, m.Finance.CashFlow)
	assert.Equal(t, 25.0, m.Finance.BudgetUtilization)

	assert.Equal(t, 2, m.Logistics.ActiveDeliveries)
	assert.Equal(t, 25.0, m.Logistics.CapacityUtilization)
	assert.Equal(t, 50.0, m.Logistics.OnTimeDeliveryRate)
	assert.Equal(t, 2, m.Logistics.FreelancerCount)

	assert.Equal(t, 3, m.LMS.ActiveCourses)
	assert.Equal(t, 50.0, m.LMS.CompletionRate)
	assert.Equal(t, 80.0, m.LMS.AverageScore)
	assert.Equal(t, 1, m.LMS.CertificationsExpiring)
}

func TestDerive_Empty(t *testing.T) {
	m := derive(snapshot{}, time.Now(), 1000)

	assert.Zero(t, m.HSE.ComplianceScore)
	assert.Equal(t, RiskLow, m.HSE.RiskLevel)
	assert.Zero(t, m.Logistics.CapacityUtilization)
	assert.Equal(t, 100.0, m.Logistics.OnTimeDeliveryRate)
	assert.Zero(t, m.LMS.CompletionRate)
	assert.Zero(t, m.LMS.AverageScore)
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, RiskLow, riskLevel(5))
	assert.Equal(t, RiskMedium, riskLevel(6))
	assert.Equal(t, RiskMedium, riskLevel(10))
	assert.Equal(t, RiskHigh, riskLevel(11))
}

func TestHistory_Bounded(t *testing.T) {
	h := newHistory(3)
	for i := 0; i < 5; i++ {
		h.append(Metrics{HR: HRMetrics{TotalEmployees: i}})
	}

	all := h.last(0)
	assert.Len(t, all, 3)
	assert.Equal(t, 2, all[0].HR.TotalEmployees)
	assert.Equal(t, 4, all[2].HR.TotalEmployees)

	two := h.last(2)
	assert.Equal(t, 3, two[0].HR.TotalEmployees)

	latest, ok := h.latest()
	assert.True(t, ok)
	assert.Equal(t, 4, latest.HR.TotalEmployees)
}
