package dto

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

var sortColumn = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns params that sort by column in the given direction without paging.
func OrderBy(column, dir string) QueryParams {
	return QueryParams{SortBy: column, SortDir: dir}
}

// OrderClause renders ORDER BY for a plain or table-qualified column.
// Anything that is not a column name or a known direction renders nothing.
func (p QueryParams) OrderClause() string {
	dir := strings.ToUpper(p.SortDir)

	if !sortColumn.MatchString(p.SortBy) || (dir != SortDirAsc && dir != SortDirDesc) {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", p.SortBy, dir)
}

// Paginate adds limit and offset arguments and returns the matching clause.
func (p QueryParams) Paginate(args map[string]any) string {
	if p.Limit <= 0 {
		return ""
	}

	args["limit"] = p.Limit

	if p.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (p.Page - 1) * p.Limit

	return "LIMIT :limit OFFSET :offset"
}
