package dto

import "strings"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// ListParams carries the ordering of a listing query. Zero value means
// unsorted, which the store resolves to insertion (rowid) order.
type ListParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Sorted builds ListParams from a column and direction flag.
func Sorted(column string, ascending bool) ListParams {
	dir := SortDirAsc
	if !ascending {
		dir = SortDirDesc
	}

	return ListParams{SortBy: column, SortDir: dir}
}

// Normalize uppercases the sort direction and defaults it to ASC when a sort
// column is set without one.
func (p *ListParams) Normalize() {
	p.SortDir = strings.ToUpper(p.SortDir)

	if p.SortDir != SortDirAsc && p.SortDir != SortDirDesc {
		if p.SortBy != "" {
			p.SortDir = SortDirAsc
		} else {
			p.SortDir = ""
		}
	}
}
