package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
)

func loadedList(page, totalPages int) *ListState {
	s := NewListState()
	s.Page = page
	s.TotalPages = totalPages
	s.TotalRecords = int64(totalPages * s.PageSize)
	return s
}

func TestSetPage(t *testing.T) {
	s := loadedList(3, 10)

	assert.True(t, s.SetPage(5))
	assert.Equal(t, 5, s.Page)

	// Same page, below range and above range are all ignored
	assert.False(t, s.SetPage(5))
	assert.False(t, s.SetPage(0))
	assert.False(t, s.SetPage(11))
	assert.Equal(t, 5, s.Page)
}

func TestSetPageSize(t *testing.T) {
	s := loadedList(4, 10)

	assert.True(t, s.SetPageSize(25))
	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, 1, s.Page, "changing page size returns to the first page")

	assert.False(t, s.SetPageSize(25))
	assert.False(t, s.SetPageSize(0))
}

func TestToggleSort(t *testing.T) {
	s := loadedList(3, 10)

	s.ToggleSort("last_name")
	assert.Equal(t, "last_name", s.SortColumn)
	assert.Equal(t, SortAsc, s.SortDirection)
	assert.Equal(t, 1, s.Page)

	s.Page = 3
	s.ToggleSort("last_name")
	assert.Equal(t, SortDesc, s.SortDirection)
	assert.Equal(t, 1, s.Page)

	s.ToggleSort("last_name")
	assert.Equal(t, SortAsc, s.SortDirection)

	// Switching columns always starts ascending
	s.ToggleSort("last_name")
	s.ToggleSort("email")
	assert.Equal(t, "email", s.SortColumn)
	assert.Equal(t, SortAsc, s.SortDirection)
}

func TestSetSearchTerm(t *testing.T) {
	s := loadedList(7, 10)

	assert.True(t, s.SetSearchTerm("cruz"))
	assert.Equal(t, 1, s.Page)
	assert.True(t, s.Searching())

	assert.False(t, s.SetSearchTerm("cruz"))

	assert.True(t, s.SetSearchTerm(""))
	assert.False(t, s.Searching())
}

func TestApply(t *testing.T) {
	s := NewListState()
	students := []models.Student{{StudentID: "25-00001"}, {StudentID: "25-00002"}}

	s.Apply(students, &dto.PaginationInfo{Total: 42, TotalPages: 5, Page: 2, PerPage: 10})
	assert.Len(t, s.Students, 2)
	assert.Equal(t, int64(42), s.TotalRecords)
	assert.Equal(t, 5, s.TotalPages)
	assert.Equal(t, 2, s.Page)

	// The server may clamp the page after deletions; follow its answer
	s.Apply(nil, &dto.PaginationInfo{Total: 0, TotalPages: 1, Page: 1, PerPage: 10})
	assert.Empty(t, s.Students)
	assert.Equal(t, 1, s.TotalPages)
	assert.Equal(t, 1, s.Page)
}

func windowNumbers(items []PageItem) []int {
	var nums []int
	for _, it := range items {
		if it.Kind == PageNumber {
			nums = append(nums, it.Page)
		}
	}
	return nums
}

func findItem(items []PageItem, kind string) (PageItem, bool) {
	for _, it := range items {
		if it.Kind == kind {
			return it, true
		}
	}
	return PageItem{}, false
}

func countEllipses(items []PageItem) int {
	n := 0
	for _, it := range items {
		if it.Kind == PageEllipsis {
			n++
		}
	}
	return n
}

func TestPageWindowMiddle(t *testing.T) {
	s := loadedList(10, 20)
	items := s.PageWindow()

	assert.Equal(t, []int{8, 9, 10, 11, 12}, windowNumbers(items))
	assert.Equal(t, 2, countEllipses(items))

	first, _ := findItem(items, PageFirst)
	assert.False(t, first.Disabled)
	last, _ := findItem(items, PageLast)
	assert.False(t, last.Disabled)
	assert.Equal(t, 20, last.Page)
}

func TestPageWindowAtStart(t *testing.T) {
	s := loadedList(1, 20)
	items := s.PageWindow()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, windowNumbers(items))
	assert.Equal(t, 1, countEllipses(items))

	first, _ := findItem(items, PageFirst)
	assert.True(t, first.Disabled)
	prev, _ := findItem(items, PagePrev)
	assert.True(t, prev.Disabled)
	next, _ := findItem(items, PageNext)
	assert.False(t, next.Disabled)
}

func TestPageWindowAtEnd(t *testing.T) {
	s := loadedList(20, 20)
	items := s.PageWindow()

	assert.Equal(t, []int{16, 17, 18, 19, 20}, windowNumbers(items))

	next, _ := findItem(items, PageNext)
	assert.True(t, next.Disabled)
	last, _ := findItem(items, PageLast)
	assert.True(t, last.Disabled)
}

func TestPageWindowFewPages(t *testing.T) {
	s := loadedList(2, 3)
	items := s.PageWindow()

	assert.Equal(t, []int{1, 2, 3}, windowNumbers(items))
	assert.Zero(t, countEllipses(items))

	var currents int
	for _, it := range items {
		if it.Current {
			currents++
			assert.Equal(t, 2, it.Page)
		}
	}
	assert.Equal(t, 1, currents)
}
