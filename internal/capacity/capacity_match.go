package capacity

// Satisfies reports whether the freelancer can serve the request: every
// required skill is held, the location is identical and, when a vehicle is
// required, the freelancer owns one of the requested type.
func (a Availability) Satisfies(r Request) bool {
	if a.Location != r.Location {
		return false
	}

	skills := make(map[string]struct{}, len(a.Skills))
	for _, s := range a.Skills {
		skills[s] = struct{}{}
	}
	for _, s := range r.RequiredSkills {
		if _, ok := skills[s]; !ok {
			return false
		}
	}

	if r.VehicleRequired {
		if !a.HasOwnVehicle {
			return false
		}
		if r.VehicleType != "" && a.VehicleType != r.VehicleType {
			return false
		}
	}
	return true
}

// candidates returns the ids of every freelancer satisfying r, in the order
// of the given slice.
func candidates(pool []Availability, r Request) []string {
	var out []string
	for _, a := range pool {
		if a.Satisfies(r) {
			out = append(out, a.FreelancerID)
		}
	}
	return out
}
