package domain

// ProviderFilter is the explicit filter specification for provider listing,
// counting, and search. A nil field imposes no constraint. The active-only
// restriction is not part of the filter — repositories apply it always.
type ProviderFilter struct {
	CategoryID     *int
	FacilityTypeID *int
	StateID        *string
}

// IsZero reports whether no optional filter is set.
func (f ProviderFilter) IsZero() bool {
	return f.CategoryID == nil && f.FacilityTypeID == nil && f.StateID == nil
}
