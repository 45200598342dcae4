package repository

import (
	"fmt"
	"strings"

	"provider-catalog/internal/domain"
)

// providerWhere builds the WHERE clause for provider listing, counting, and
// search from an explicit filter specification. Every value travels as a bind
// parameter; fragments are appended in a fixed order so identical filters
// always produce identical SQL. Placeholder numbering starts at startIdx to
// leave room for preceding parameters (e.g. a search pattern).
func providerWhere(filter domain.ProviderFilter, startIdx int, extra ...string) (string, []any) {
	conds := []string{"hp.is_active = true"}
	conds = append(conds, extra...)
	args := []any{}
	n := startIdx

	if filter.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("hp.facility_category_id = $%d", n))
		args = append(args, *filter.CategoryID)
		n++
	}
	if filter.FacilityTypeID != nil {
		conds = append(conds, fmt.Sprintf("hp.facility_type_id = $%d", n))
		args = append(args, *filter.FacilityTypeID)
		n++
	}
	if filter.StateID != nil {
		conds = append(conds, fmt.Sprintf("hp.business_state_id = $%d", n))
		args = append(args, *filter.StateID)
		n++
	}

	return strings.Join(conds, " AND "), args
}
