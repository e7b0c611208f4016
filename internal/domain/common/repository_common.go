package common

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("common: not found")
	ErrConflict = errors.New("common: conflict")
)

// StatusAll disables the status filter.
const StatusAll = "all"

// Filter is the list filter shared by the admin tables.
type Filter struct {
	SearchQuery string // case-insensitive substring
	Status      string // exact match; "" or "all" = no filter
}

// MatchesQuery reports whether q is a case-insensitive substring of any field.
// An empty query matches everything.
func MatchesQuery(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether status passes the filter.
func MatchesStatus(filter, status string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, StatusAll) {
		return true
	}
	return filter == status
}

// NextIntID returns max(ids)+1, or 1 when ids is empty.
func NextIntID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
