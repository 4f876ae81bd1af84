// Package adminview is the shared engine behind the four admin CRUD
// tables. One parameterized descriptor per resource replaces four copies
// of fetch/search/sort plumbing: the whole collection is fetched, then
// filtered and sorted in memory.
package adminview

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type SortDir string

const (
	SortNone SortDir = ""
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Column describes one table column. Value feeds the sort comparison,
// Cell renders the display string.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(T) any
	Cell     func(T) string
}

// Query is the view state carried in the URL: a substring search and a
// single active sort column.
type Query struct {
	Search  string
	SortKey string
	SortDir SortDir
}

// NextSort cycles the sort state for a clicked column header:
// ascending, descending, unsorted. Clicking a different column starts
// that column at ascending.
func NextSort(q Query, key string) Query {
	if q.SortKey != key {
		return Query{Search: q.Search, SortKey: key, SortDir: SortAsc}
	}
	switch q.SortDir {
	case SortAsc:
		return Query{Search: q.Search, SortKey: key, SortDir: SortDesc}
	case SortDesc:
		return Query{Search: q.Search}
	default:
		return Query{Search: q.Search, SortKey: key, SortDir: SortAsc}
	}
}

// Descriptor parameterizes the engine for one resource.
type Descriptor[T any] struct {
	Columns      []Column[T]
	SearchFields func(T) []string
	ID           func(T) uint
}

// Apply filters rows by case-insensitive substring over the declared
// search fields, then sorts by the active column.
func Apply[T any](rows []T, q Query, d Descriptor[T]) []T {
	out := make([]T, 0, len(rows))

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, row := range rows {
		if needle == "" || matches(d.SearchFields(row), needle) {
			out = append(out, row)
		}
	}

	if q.SortKey != "" && q.SortDir != SortNone {
		var col *Column[T]
		for i := range d.Columns {
			if d.Columns[i].Key == q.SortKey && d.Columns[i].Sortable {
				col = &d.Columns[i]
				break
			}
		}
		if col != nil {
			sort.SliceStable(out, func(i, j int) bool {
				cmp := compare(col.Value(out[i]), col.Value(out[j]))
				if q.SortDir == SortDesc {
					return cmp > 0
				}
				return cmp < 0
			})
		}
	}

	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// compare orders two column values of the same dynamic type.
func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		return strings.Compare(strings.ToLower(av), strings.ToLower(b.(string)))
	case int:
		return av - b.(int)
	case uint:
		bv := b.(uint)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	case time.Time:
		bv := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// Header is a rendered column header with the sort state baked in for
// the template.
type Header struct {
	Key      string
	Label    string
	Sortable bool
	Dir      SortDir
	NextDir  SortDir
}

// Row is a rendered table row.
type Row struct {
	ID    uint
	Cells []string
}

// View is everything a list template needs.
type View struct {
	Headers []Header
	Rows    []Row
	Query   Query
	Total   int
}

// Build applies the query and renders headers and rows for the template.
// An empty Rows slice is the explicit empty state, never a nil table.
func Build[T any](rows []T, q Query, d Descriptor[T]) View {
	filtered := Apply(rows, q, d)

	view := View{
		Headers: make([]Header, 0, len(d.Columns)),
		Rows:    make([]Row, 0, len(filtered)),
		Query:   q,
		Total:   len(filtered),
	}

	for _, col := range d.Columns {
		h := Header{Key: col.Key, Label: col.Label, Sortable: col.Sortable}
		if q.SortKey == col.Key {
			h.Dir = q.SortDir
		}
		h.NextDir = NextSort(Query{SortKey: q.SortKey, SortDir: q.SortDir}, col.Key).SortDir
		view.Headers = append(view.Headers, h)
	}

	for _, row := range filtered {
		cells := make([]string, 0, len(d.Columns))
		for _, col := range d.Columns {
			cells = append(cells, col.Cell(row))
		}
		view.Rows = append(view.Rows, Row{ID: d.ID(row), Cells: cells})
	}

	return view
}
