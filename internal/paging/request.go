package paging

import (
	"fmt"
	"math"
	"strings"
)

// Direction is a sort direction understood by the stores.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc/desc in any case.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// Sort is a single-key ordering. Key is a logical field name; each store
// maps it onto a column through its own allow-list.
type Sort struct {
	Key       string
	Direction Direction
}

func (s Sort) String() string { return s.Key + " " + string(s.Direction) }

// By builds an ascending sort on key.
func By(key string) Sort { return Sort{Key: key, Direction: Asc} }

// Descending returns a copy of s ordered descending.
func (s Sort) Descending() Sort {
	s.Direction = Desc
	return s
}

// QueryDescriptor is the normalized form of a page request handed to a store.
// Offset is the zero-based page offset, not a row count; see Skip.
type QueryDescriptor struct {
	Offset   int
	PageSize int
	Sort     Sort
}

// Skip converts the page offset into the number of rows to skip.
// It saturates at math.MaxInt rather than overflowing for absurd page numbers.
func (q QueryDescriptor) Skip() int {
	if q.Offset <= 0 || q.PageSize <= 0 {
		return 0
	}
	if q.Offset > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return q.Offset * q.PageSize
}

// Normalize turns a caller supplied 1-based page number into a query.
//
// Zero and negative pages collapse onto the first page; page N maps to
// offset N-1. pageSize is taken as given. The sort is always the fixed sort
// passed in, whatever ordering the caller may have asked for.
//
// Examples:
//   - Normalize(0, 10, s).Offset  == 0
//   - Normalize(-5, 10, s).Offset == 0
//   - Normalize(3, 10, s).Offset  == 2
func Normalize(rawPage, pageSize int, fixed Sort) QueryDescriptor {
	offset := 0
	if rawPage > 0 {
		offset = rawPage - 1
	}
	return QueryDescriptor{Offset: offset, PageSize: pageSize, Sort: fixed}
}
