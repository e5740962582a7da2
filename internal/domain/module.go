package domain

import "strings"

// Module tags the business module that produced or consumes an integration
// event. The set is closed.
type Module string

const (
	ModuleHR         Module = "HR"
	ModuleHSE        Module = "HSE"
	ModulePayroll    Module = "Payroll"
	ModuleFinance    Module = "Finance"
	ModuleFreelancer Module = "Freelancer"
	ModuleLogistics  Module = "Logistics"
	ModuleLMS        Module = "LMS"
	ModuleCompliance Module = "Compliance"
	ModuleDashboard  Module = "Dashboard"
)

var allModules = []Module{
	ModuleHR,
	ModuleHSE,
	ModulePayroll,
	ModuleFinance,
	ModuleFreelancer,
	ModuleLogistics,
	ModuleLMS,
	ModuleCompliance,
	ModuleDashboard,
}

// AllModules returns every known module in declaration order.
func AllModules() []Module {
	out := make([]Module, len(allModules))
	copy(out, allModules)
	return out
}

func (m Module) Valid() bool {
	for _, known := range allModules {
		if m == known {
			return true
		}
	}
	return false
}

func (m Module) String() string {
	return string(m)
}

// ParseModule resolves a module tag case-insensitively ("hr" -> HR).
func ParseModule(v string) (Module, bool) {
	v = strings.TrimSpace(v)
	for _, known := range allModules {
		if strings.EqualFold(v, string(known)) {
			return known, true
		}
	}
	return "", false
}
