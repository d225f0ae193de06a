// Package state holds the dashboard's table and form state. Mutations here
// are pure bookkeeping; network side effects live in the controller.
package state

import (
	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
)

// Sort directions as sent to the API.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize matches the server default.
const DefaultPageSize = 10

// PageSizes are the selectable rows-per-page values.
var PageSizes = []int{10, 25, 50, 100}

// ListState tracks the visible page of students plus the query parameters
// that produced it.
type ListState struct {
	Students []models.Student

	Page         int
	PageSize     int
	TotalRecords int64
	TotalPages   int

	SortColumn    string
	SortDirection string

	SearchTerm string
}

// NewListState returns an empty list positioned on the first page.
func NewListState() *ListState {
	return &ListState{
		Page:          1,
		PageSize:      DefaultPageSize,
		TotalPages:    1,
		SortDirection: SortAsc,
	}
}

// Searching reports whether a search term is active.
func (s *ListState) Searching() bool {
	return s.SearchTerm != ""
}

// SetPage moves to page n. Requests for the current page or a page outside
// [1, TotalPages] are ignored.
func (s *ListState) SetPage(n int) bool {
	if n < 1 || n > s.TotalPages || n == s.Page {
		return false
	}
	s.Page = n
	return true
}

// SetPageSize changes rows per page and resets to the first page. Setting the
// current size is ignored.
func (s *ListState) SetPageSize(n int) bool {
	if n < 1 || n == s.PageSize {
		return false
	}
	s.PageSize = n
	s.Page = 1
	return true
}

// ToggleSort flips the direction when column is already the sort key,
// otherwise sorts ascending by column. Either way the view returns to the
// first page.
func (s *ListState) ToggleSort(column string) {
	if s.SortColumn == column {
		if s.SortDirection == SortAsc {
			s.SortDirection = SortDesc
		} else {
			s.SortDirection = SortAsc
		}
	} else {
		s.SortColumn = column
		s.SortDirection = SortAsc
	}
	s.Page = 1
}

// SetSearchTerm records the term and resets to the first page when the term
// changed.
func (s *ListState) SetSearchTerm(term string) bool {
	if term == s.SearchTerm {
		return false
	}
	s.SearchTerm = term
	s.Page = 1
	return true
}

// Apply installs a fetched page and its pagination envelope.
func (s *ListState) Apply(students []models.Student, p *dto.PaginationInfo) {
	s.Students = students
	if p == nil {
		s.TotalRecords = int64(len(students))
		s.TotalPages = 1
		s.Page = 1
		return
	}
	s.TotalRecords = p.Total
	s.TotalPages = p.TotalPages
	if s.TotalPages < 1 {
		s.TotalPages = 1
	}
	// The server clamps out-of-range pages (e.g. after the last record on a
	// page is deleted); follow its answer.
	s.Page = p.Page
	if s.Page < 1 {
		s.Page = 1
	}
}

// Kinds of pagination bar entries.
const (
	PageFirst    = "first"
	PagePrev     = "prev"
	PageNumber   = "number"
	PageEllipsis = "ellipsis"
	PageNext     = "next"
	PageLast     = "last"
)

// PageItem is one entry in the rendered pagination bar.
type PageItem struct {
	Kind     string
	Page     int
	Current  bool
	Disabled bool
}

// PageWindow returns the pagination bar: First/Prev controls, a window of at
// most five page numbers centered on the current page with ellipsis markers
// for the hidden ranges, then Next/Last. Edge controls are disabled on the
// first and last pages.
func (s *ListState) PageWindow() []PageItem {
	atFirst := s.Page <= 1
	atLast := s.Page >= s.TotalPages

	items := []PageItem{
		{Kind: PageFirst, Page: 1, Disabled: atFirst},
		{Kind: PagePrev, Page: s.Page - 1, Disabled: atFirst},
	}

	start := s.Page - 2
	end := s.Page + 2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > s.TotalPages {
		start -= end - s.TotalPages
		end = s.TotalPages
	}
	if start < 1 {
		start = 1
	}

	if start > 1 {
		items = append(items, PageItem{Kind: PageEllipsis})
	}
	for n := start; n <= end; n++ {
		items = append(items, PageItem{Kind: PageNumber, Page: n, Current: n == s.Page})
	}
	if end < s.TotalPages {
		items = append(items, PageItem{Kind: PageEllipsis})
	}

	items = append(items,
		PageItem{Kind: PageNext, Page: s.Page + 1, Disabled: atLast},
		PageItem{Kind: PageLast, Page: s.TotalPages, Disabled: atLast},
	)
	return items
}
