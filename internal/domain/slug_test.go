package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameToSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Hospitals", want: "hospitals"},
		{name: "spaces become hyphens", in: "Urgent Care Centers", want: "urgent-care-centers"},
		{name: "parentheses stripped", in: "Clinics (Outpatient)", want: "clinics-outpatient"},
		{name: "ampersand stripped", in: "Dialysis & Imaging", want: "dialysis--imaging"},
		{name: "slash becomes hyphen", in: "Labs/Diagnostics", want: "labs-diagnostics"},
		{name: "already lowercase", in: "pharmacies", want: "pharmacies"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NameToSlug(tt.in))
		})
	}
}

// Lookup by slug recomputes the slug for every category, so any display name
// must resolve back to its own category.
func TestNameToSlug_RoundTrip(t *testing.T) {
	t.Parallel()

	categories := []Category{
		{ID: 1, DisplayName: "Hospitals"},
		{ID: 2, DisplayName: "Clinics (Outpatient)"},
		{ID: 3, DisplayName: "Imaging & Radiology"},
		{ID: 4, DisplayName: "Home Health/Hospice"},
	}

	for _, want := range categories {
		slug := NameToSlug(want.DisplayName)
		var got *Category
		for i := range categories {
			if NameToSlug(categories[i].DisplayName) == slug {
				got = &categories[i]
				break
			}
		}
		assert.NotNil(t, got)
		assert.Equal(t, want.ID, got.ID, "slug %q resolved to the wrong category", slug)
	}
}
