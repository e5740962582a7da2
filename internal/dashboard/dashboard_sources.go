package dashboard

import (
	"context"

	"go-integration/internal/audit"
	"go-integration/internal/capacity"
	"go-integration/internal/competency"
	"go-integration/internal/eventbus"
	"go-integration/internal/finance"
	"go-integration/internal/payroll"
	"go-integration/internal/rule"
	"go-integration/internal/training"
)

// Sources are the read paths the aggregator derives metrics from.
type Sources struct {
	Trainings    training.Service
	Payroll      payroll.Service
	Finance      finance.Service
	Capacity     capacity.Service
	Competencies competency.Service
	Bus          eventbus.Bus
	Rules        rule.Service
	Audit        audit.Service
}

type snapshot struct {
	assignments  []training.Assignment
	payroll      []payroll.Entry
	transactions []finance.Transaction
	requests     []capacity.Request
	freelancers  []capacity.Availability
	completions  []competency.Completion
}

func (s Sources) collect(ctx context.Context) (snapshot, error) {
	var (
		snap snapshot
		err  error
	)
	if snap.assignments, err = s.Trainings.GetAssignments(ctx, ""); err != nil {
		return snapshot{}, err
	}
	if snap.payroll, err = s.Payroll.GetEntries(ctx, ""); err != nil {
		return snapshot{}, err
	}
	if snap.transactions, err = s.Finance.GetTransactions(ctx, ""); err != nil {
		return snapshot{}, err
	}
	if snap.requests, err = s.Capacity.GetRequests(ctx, ""); err != nil {
		return snapshot{}, err
	}
	if snap.freelancers, err = s.Capacity.GetAvailability(ctx, ""); err != nil {
		return snapshot{}, err
	}
	if snap.completions, err = s.Competencies.GetCompletions(ctx); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}
