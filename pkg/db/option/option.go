// Package option provides composable gorm query modifiers.
package option

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type sortOption struct {
	clause string
}

func (o sortOption) Apply(db *gorm.DB) *gorm.DB {
	if o.clause == "" {
		return db
	}
	return db.Order(o.clause)
}

// WithSortBy orders the query by a pre-sanitized clause.
func WithSortBy(clause string) QueryOption {
	return sortOption{clause: clause}
}

// WithQuerySortBy builds an ORDER BY clause from request parameters,
// restricted to the allowed column set. Unknown columns fall back to
// created_at ascending.
func WithQuerySortBy(sortBy, orderBy string, allowed map[string]bool) string {
	column := strings.ToLower(strings.TrimSpace(sortBy))
	if column == "" || !allowed[column] {
		column = "created_at"
	}

	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(orderBy), "desc") {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}
