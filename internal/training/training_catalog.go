package training

import (
	"strings"
)

type course struct {
	id       string
	name     string
	category Category
}

var mandatoryCourses = []course{
	{id: "safety-general", name: "General Safety Orientation", category: CategorySafety},
	{id: "fire-safety", name: "Fire Safety & Evacuation", category: CategorySafety},
	{id: "first-aid", name: "Basic First Aid", category: CategorySafety},
	{id: "gdpr", name: "GDPR Data Protection", category: CategoryCompliance},
}

var departmentCourses = map[string][]course{
	"warehouse": {
		{id: "forklift", name: "Forklift Operation", category: CategorySafety},
		{id: "manual-handling", name: "Manual Handling", category: CategorySafety},
	},
	"logistics": {
		{id: "driving-safety", name: "Defensive Driving", category: CategorySafety},
		{id: "load-securing", name: "Load Securing", category: CategoryCompliance},
	},
	"office": {
		{id: "ergonomics", name: "Workplace Ergonomics", category: CategorySafety},
	},
	"it": {
		{id: "cybersecurity", name: "Cybersecurity Awareness", category: CategoryCompliance},
	},
}

// coursesFor returns the mandatory courses, then the department's courses,
// then any extra required trainings not already in the list.
func coursesFor(department string, required []string) []course {
	out := append([]course(nil), mandatoryCourses...)
	out = append(out, departmentCourses[strings.ToLower(strings.TrimSpace(department))]...)

	seen := make(map[string]bool, len(out))
	for _, c := range out {
		seen[strings.ToLower(c.name)] = true
		seen[c.id] = true
	}

	for _, name := range required {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id := slug(name)
		if seen[strings.ToLower(name)] || seen[id] {
			continue
		}
		seen[strings.ToLower(name)] = true
		seen[id] = true
		out = append(out, course{id: id, name: name, category: CategoryOnboarding})
	}
	return out
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
