package repository

import "github.com/maxviazov/menu-catalog-service/internal/paging"

// PageResult is one page of a listing plus the counts a paging UI needs.
// Number is the zero-based page offset the page was fetched with.
type PageResult[T any] struct {
	Items            []T
	Number           int
	PageSize         int
	NumberOfElements int
	TotalElements    int64
	TotalPages       int
	IsFirst          bool
	IsLast           bool
	Sort             paging.Sort
}

// NewPageResult derives the page metadata from the query and the total row count.
// TotalPages is 0 for an empty collection.
func NewPageResult[T any](items []T, total int64, q paging.QueryDescriptor) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if q.PageSize > 0 && total > 0 {
		totalPages = int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	}
	return PageResult[T]{
		Items:            items,
		Number:           q.Offset,
		PageSize:         q.PageSize,
		NumberOfElements: len(items),
		TotalElements:    total,
		TotalPages:       totalPages,
		IsFirst:          q.Offset == 0,
		IsLast:           q.Offset+1 >= totalPages,
		Sort:             q.Sort,
	}
}
