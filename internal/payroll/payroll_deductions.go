package payroll

// Romanian statutory rates.
const (
	casRate     = 0.25
	cassRate    = 0.10
	impozitRate = 0.10
)

// CalculateDeductions splits a gross salary into social insurance (CAS),
// health insurance (CASS) and income tax (impozit, levied on gross minus
// CAS and CASS). Values are not rounded.
func CalculateDeductions(gross float64) (Deductions, float64) {
	cas := gross * casRate
	cass := gross * cassRate
	impozit := (gross - cas - cass) * impozitRate
	net := gross - cas - cass - impozit

	return Deductions{CAS: cas, CASS: cass, Impozit: impozit}, net
}
