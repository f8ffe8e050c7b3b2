package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flightdesk/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table",
			filter: dto.Filter{
				Field:    "airport_dep_id",
				Value:    "SVO",
				Operator: dto.FilterOperatorEq,
				Table:    "Flights",
			},
			wantWhere: "Flights.airport_dep_id = :airport_dep_id",
			wantArgs:  map[string]any{"airport_dep_id": "SVO"},
		},
		{
			name: "equality with explicit arg name",
			filter: dto.Filter{
				ArgName:  "dep_date",
				Field:    "departure_date",
				Value:    "2024-01-01",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "departure_date = :dep_date",
			wantArgs:  map[string]any{"dep_date": "2024-01-01"},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "status",
				Value:    "retired",
				Operator: dto.FilterOperatorNotEq,
			},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "retired"},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "x",
				Operator: "greater",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "flight_number",
		Value:    []string{"SU100", "SU200"},
		Operator: dto.FilterOperatorIn,
	}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "flight_number IN (:flight_number_0, :flight_number_1) ", where)
	assert.Equal(t, map[string]any{"flight_number_0": "SU100", "flight_number_1": "SU200"}, args)
}

func TestFilterGroup_Compound(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "flight_number", Value: "SU100", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "departure_date", Value: "2024-01-01", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(flight_number = :flight_number AND departure_date = :departure_date)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "b", Value: 2, Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()
	assert.Contains(t, where, " AND ")
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestListParams_Normalize(t *testing.T) {
	params := dto.ListParams{SortBy: "arrival", SortDir: "desc"}
	params.Normalize()
	assert.Equal(t, dto.SortDirDesc, params.SortDir)

	params = dto.ListParams{SortBy: "arrival"}
	params.Normalize()
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.ListParams{SortDir: "sideways"}
	params.Normalize()
	assert.Empty(t, params.SortDir)
}

func TestSorted(t *testing.T) {
	assert.Equal(t, dto.ListParams{SortBy: "arrival", SortDir: "ASC"}, dto.Sorted("arrival", true))
	assert.Equal(t, dto.ListParams{SortBy: "arrival", SortDir: "DESC"}, dto.Sorted("arrival", false))
}
