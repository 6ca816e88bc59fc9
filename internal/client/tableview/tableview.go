// Package tableview implements the client-side sorting and pagination shared
// by every list screen: comparator-based stable sort plus fixed-size pages
// over an in-memory slice.
package tableview

import "sort"

type Table[T any] struct {
	rows []T
}

// New wraps rows in a Table. The slice is copied so sorting never reorders
// the caller's data.
func New[T any](rows []T) *Table[T] {
	copied := make([]T, len(rows))
	copy(copied, rows)
	return &Table[T]{rows: copied}
}

// Sort orders the rows by the given comparator (stable) and returns the
// table for chaining.
func (t *Table[T]) Sort(less func(a, b T) bool) *Table[T] {
	sort.SliceStable(t.rows, func(i, j int) bool { return less(t.rows[i], t.rows[j]) })
	return t
}

// Len returns the total number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Rows returns the current row order.
func (t *Table[T]) Rows() []T {
	return t.rows
}

// Page is one window of a table.
type Page[T any] struct {
	Rows       []T
	Number     int
	Size       int
	TotalRows  int
	TotalPages int
}

// Page returns the 1-based page number of the given size. The number is
// clamped into the valid range, so asking past the end yields the last page;
// an empty table yields one empty page.
func (t *Table[T]) Page(number, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := (len(t.rows) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > len(t.rows) {
		start = len(t.rows)
	}
	if end > len(t.rows) {
		end = len(t.rows)
	}

	return Page[T]{
		Rows:       t.rows[start:end],
		Number:     number,
		Size:       size,
		TotalRows:  len(t.rows),
		TotalPages: totalPages,
	}
}
