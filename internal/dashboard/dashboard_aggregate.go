package dashboard

import (
	"time"

	"go-integration/internal/capacity"
	"go-integration/internal/finance"
	"go-integration/internal/training"
)

const expiryWindow = 30 * 24 * time.Hour

// derive computes a snapshot from component state. It has no side effects.
func derive(snap snapshot, now time.Time, monthlyBudget float64) Metrics {
	return Metrics{
		Timestamp: now,
		HR:        deriveHR(snap, now),
		HSE:       deriveHSE(snap.assignments, now),
		Finance:   deriveFinance(snap, monthlyBudget),
		Logistics: deriveLogistics(snap.requests, len(snap.freelancers)),
		LMS:       deriveLMS(snap, now),
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func deriveHR(snap snapshot, now time.Time) HRMetrics {
	employees := make(map[string]struct{})
	hires := make(map[string]struct{})
	pending := 0

	for _, a := range snap.assignments {
		employees[a.EmployeeID] = struct{}{}
		if sameMonth(a.AssignedDate, now) {
			hires[a.EmployeeID] = struct{}{}
		}
		if a.Status == training.StatusAssigned {
			pending++
		}
	}
	for _, e := range snap.payroll {
		employees[e.EmployeeID] = struct{}{}
	}

	return HRMetrics{
		TotalEmployees:    len(employees),
		NewHires:          len(hires),
		PendingOnboarding: pending,
	}
}

func deriveHSE(assignments []training.Assignment, now time.Time) HSEMetrics {
	overdue, completed := 0, 0
	for _, a := range assignments {
		if a.Overdue(now) {
			overdue++
		}
		if a.Status == training.StatusCompleted {
			completed++
		}
	}

	total := len(assignments)
	if total == 0 {
		total = 1
	}

	return HSEMetrics{
		OverdueTrainings: overdue,
		ComplianceScore:  int(float64(completed)/float64(total)*100 + 0.5),
		RiskLevel:        riskLevel(overdue),
	}
}

func deriveFinance(snap snapshot, monthlyBudget float64) FinanceMetrics {
	var m FinanceMetrics
	for _, e := range snap.payroll {
		m.MonthlyPayroll += e.GrossSalary
	}

	var spent float64
	for _, tx := range snap.transactions {
		if tx.Status == finance.StatusPending {
			m.PendingPayments++
		}
		switch tx.Type {
		case finance.TypeRevenue:
			m.CashFlow += tx.Amount
		case finance.TypeExpense, finance.TypePayroll:
			m.CashFlow -= tx.Amount
			spent += tx.Amount
		}
	}
	if monthlyBudget > 0 {
		m.BudgetUtilization = round1(spent / monthlyBudget * 100)
	}
	return m
}

func deriveLogistics(requests []capacity.Request, freelancers int) LogisticsMetrics {
	active, confirmed, unfulfilled := 0, 0, 0
	for _, r := range requests {
		switch r.Status {
		case capacity.StatusOpen, capacity.StatusMatched:
			active++
		case capacity.StatusConfirmed:
			confirmed++
		case capacity.StatusUnfulfilled:
			unfulfilled++
		}
	}

	return LogisticsMetrics{
		ActiveDeliveries:    active,
		CapacityUtilization: percent(confirmed, len(requests), 0),
		OnTimeDeliveryRate:  percent(confirmed, confirmed+unfulfilled, 100),
		FreelancerCount:     freelancers,
	}
}

func deriveLMS(snap snapshot, now time.Time) LMSMetrics {
	var m LMSMetrics

	courses := make(map[string]struct{})
	var scoreSum float64
	scored := 0
	for _, c := range snap.completions {
		evidence := c.CertificateID
		if evidence == "" {
			evidence = c.CourseID
		}
		courses[evidence] = struct{}{}

		if c.Score != nil {
			scoreSum += *c.Score
			scored++
		}
		if c.CertificateID != "" && c.ValidUntil != nil &&
			!c.ValidUntil.Before(now) && c.ValidUntil.Sub(now) <= expiryWindow {
			m.CertificationsExpiring++
		}
	}
	m.ActiveCourses = len(courses)
	if scored > 0 {
		m.AverageScore = round1(scoreSum / float64(scored))
	}

	completed := 0
	for _, a := range snap.assignments {
		if a.Status == training.StatusCompleted {
			completed++
		}
	}
	m.CompletionRate = percent(completed, len(snap.assignments), 0)

	return m
}
