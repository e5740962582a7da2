package payroll

import (
	"go-integration/internal/domain"
	"go-integration/internal/finance"
)

type SalarySyncResponse struct {
	Entry Entry `json:"entry"`
}

type breakdownLine struct {
	label  string
	amount float64
}

func breakdown(e Entry) []breakdownLine {
	return []breakdownLine{
		{"Gross salary", e.GrossSalary},
		{"CAS (25%)", e.Deductions.CAS},
		{"CASS (10%)", e.Deductions.CASS},
		{"Impozit (10%)", e.Deductions.Impozit},
		{"Other deductions", e.Deductions.Other},
		{"Net salary", e.NetSalary},
	}
}

func financeRequest(e Entry) finance.NewTransaction {
	return finance.NewTransaction{
		Type:         finance.TypePayroll,
		Amount:       e.GrossSalary,
		Currency:     e.Currency,
		Category:     "Salaries",
		Description:  "Payroll for employee " + e.EmployeeID,
		SourceModule: domain.ModulePayroll,
		ReferenceID:  e.ID,
	}
}
