package payroll

const StatusDraft = "draft"

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type Deductions struct {
	CAS     float64 `json:"cas"`
	CASS    float64 `json:"cass"`
	Impozit float64 `json:"impozit"`
	Other   float64 `json:"other"`
}

// Total is the sum of every deduction.
func (d Deductions) Total() float64 {
	return d.CAS + d.CASS + d.Impozit + d.Other
}

type Entry struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Period      Period     `json:"period"`
	GrossSalary float64    `json:"gross_salary"`
	NetSalary   float64    `json:"net_salary"`
	Deductions  Deductions `json:"deductions"`
	Bonuses     float64    `json:"bonuses"`
	Overtime    float64    `json:"overtime"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
}
