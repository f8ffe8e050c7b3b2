package shared

import (
	"flightdesk/shared/dto"
)

// FilterEq builds the single-column equality filter the managers use for
// every predicate fetch.
func FilterEq(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterAll is the empty filter: every row matches.
func FilterAll() dto.FilterGroup {
	return dto.FilterGroup{}
}
