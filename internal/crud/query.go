// Package crud holds the pieces shared by every container/item resource
// family: list-query parsing, paginated listing, and the ownership predicate.
package crud

import (
	"fmt"
	"strings"

	"github.com/deckform/deckform/internal/types"
	"gorm.io/gorm"
)

// ListQuery carries the common query parameters of every list endpoint.
type ListQuery struct {
	Sort   string `form:"sort" binding:"omitempty,oneof=asc desc"`
	Search string `form:"search"`
	Page   int    `form:"page" binding:"omitempty,gte=1"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// Defaults fills in the documented fallbacks: sort asc, page 1, limit 10.
func (q *ListQuery) Defaults() {
	if q.Sort == "" {
		q.Sort = "asc"
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 10
	}
}

// likeEscaper neutralizes LIKE metacharacters so a search term is always a
// literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplySearch narrows tx to rows where any of the columns contains search,
// case-insensitively. LOWER/LIKE keeps the query portable across postgres and
// sqlite.
func ApplySearch(tx *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return tx
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))

	for _, column := range columns {
		clauses = append(clauses, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column))
		args = append(args, pattern)
	}

	return tx.Where(strings.Join(clauses, " OR "), args...)
}

// List runs a paginated query. query must return a fresh scoped *gorm.DB on
// each call (one for the count, one for the page). Rows are ordered by
// dateColumn and id so pagination stays stable when timestamps collide.
func List[T any](query func() *gorm.DB, q ListQuery, dateColumn string) ([]T, types.PageMeta, error) {
	var total int64

	if err := query().Count(&total).Error; err != nil {
		return nil, types.PageMeta{}, err
	}

	direction := "asc"
	if q.Sort == "desc" {
		direction = "desc"
	}

	items := []T{}

	err := query().
		Order(fmt.Sprintf("%s %s, id %s", dateColumn, direction, direction)).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&items).Error

	if err != nil {
		return nil, types.PageMeta{}, err
	}

	meta := types.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
		TotalCount: total,
	}

	return items, meta, nil
}
