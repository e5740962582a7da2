package capacity_test

import (
	"testing"

	"go-integration/internal/capacity"

	"github.com/stretchr/testify/assert"
)

func TestAvailability_Satisfies(t *testing.T) {
	driver := capacity.Availability{
		FreelancerID:  "freelancer-1",
		Skills:        []string{"driving", "delivery", "warehouse"},
		Location:      "Bucharest",
		VehicleType:   "van",
		HasOwnVehicle: true,
	}
	packer := capacity.Availability{
		FreelancerID: "freelancer-2",
		Skills:       []string{"packaging", "inventory"},
		Location:     "Bucharest",
	}

	tests := []struct {
		name  string
		avail capacity.Availability
		req   capacity.Request
		want  bool
	}{
		{
			name:  "skills subset, same location",
			avail: driver,
			req:   capacity.Request{RequiredSkills: []string{"driving", "delivery"}, Location: "Bucharest"},
			want:  true,
		},
		{
			name:  "missing one skill",
			avail: driver,
			req:   capacity.Request{RequiredSkills: []string{"driving", "forklift"}, Location: "Bucharest"},
			want:  false,
		},
		{
			name:  "location must match exactly",
			avail: driver,
			req:   capacity.Request{RequiredSkills: []string{"driving"}, Location: "Bucharest Sector 1"},
			want:  false,
		},
		{
			name:  "vehicle required without own vehicle",
			avail: packer,
			req:   capacity.Request{RequiredSkills: []string{"packaging"}, Location: "Bucharest", VehicleRequired: true},
			want:  false,
		},
		{
			name:  "vehicle type mismatch",
			avail: driver,
			req:   capacity.Request{RequiredSkills: []string{"driving"}, Location: "Bucharest", VehicleRequired: true, VehicleType: "truck"},
			want:  false,
		},
		{
			name:  "any vehicle type accepted",
			avail: driver,
			req:   capacity.Request{RequiredSkills: []string{"driving"}, Location: "Bucharest", VehicleRequired: true},
			want:  true,
		},
		{
			name:  "vehicle type ignored when not required",
			avail: packer,
			req:   capacity.Request{RequiredSkills: []string{"inventory"}, Location: "Bucharest", VehicleType: "van"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.avail.Satisfies(tt.req))
		})
	}
}
