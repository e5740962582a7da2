package events

// Event types published on the integration bus.
const (
	TypeTrainingAssigned     = "hr.onboarding.training_assigned"
	TypeSalarySynced         = "payroll.salary_synced"
	TypeCapacityMatched      = "logistics.capacity_matched"
	TypeFreelancerConfirmed  = "logistics.freelancer_confirmed"
	TypeCompetencyUpdated    = "lms.competency_updated"
	TypeExpenseRecorded      = "logistics.expense_recorded"
	TypeExpenseApproved      = "logistics.expense_approved"
	TypeInventoryCostUpdated = "logistics.inventory_cost_updated"
)

// Trigger types named by integration rules. Upstream modules publish these.
const (
	TriggerEmployeeOnboarded = "hr.employee.onboarded"
	TriggerSalaryChanged     = "hr.salary.changed"
	TriggerCourseCompleted   = "lms.course.completed"
)
