package adminview

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type booking struct {
	id     uint
	name   string
	guests int
	start  time.Time
}

func bookingDescriptor() Descriptor[booking] {
	return Descriptor[booking]{
		Columns: []Column[booking]{
			{
				Key: "name", Label: "Name", Sortable: true,
				Value: func(b booking) any { return b.name },
				Cell:  func(b booking) string { return b.name },
			},
			{
				Key: "guests", Label: "Guests", Sortable: true,
				Value: func(b booking) any { return b.guests },
				Cell:  func(b booking) string { return strconv.Itoa(b.guests) },
			},
			{
				Key: "start", Label: "Start", Sortable: true,
				Value: func(b booking) any { return b.start },
				Cell:  func(b booking) string { return b.start.Format("2006-01-02 15:04") },
			},
			{
				Key: "note", Label: "Note", Sortable: false,
				Value: func(b booking) any { return nil },
				Cell:  func(b booking) string { return "" },
			},
		},
		SearchFields: func(b booking) []string {
			return []string{b.name, strconv.Itoa(b.guests)}
		},
		ID: func(b booking) uint { return b.id },
	}
}

func sampleBookings() []booking {
	day := func(d int) time.Time {
		return time.Date(2026, 7, d, 18, 0, 0, 0, time.UTC)
	}
	return []booking{
		{1, "Tanaka", 4, day(3)},
		{2, "abe", 2, day(1)},
		{3, "Yamada", 6, day(2)},
		{4, "Abe", 8, day(4)},
	}
}

func names(rows []booking) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.name)
	}
	return out
}

func TestNextSortCyclesThreeStates(t *testing.T) {
	q := Query{Search: "tea"}

	q = NextSort(q, "name")
	assert.Equal(t, Query{Search: "tea", SortKey: "name", SortDir: SortAsc}, q)

	q = NextSort(q, "name")
	assert.Equal(t, SortDesc, q.SortDir)

	q = NextSort(q, "name")
	assert.Equal(t, Query{Search: "tea"}, q)

	q = NextSort(q, "name")
	assert.Equal(t, SortAsc, q.SortDir)
}

func TestNextSortDifferentColumnStartsAscending(t *testing.T) {
	q := Query{SortKey: "name", SortDir: SortDesc}
	q = NextSort(q, "guests")
	assert.Equal(t, "guests", q.SortKey)
	assert.Equal(t, SortAsc, q.SortDir)
}

func TestApplySortsByColumn(t *testing.T) {
	d := bookingDescriptor()
	rows := sampleBookings()

	asc := Apply(rows, Query{SortKey: "guests", SortDir: SortAsc}, d)
	assert.Equal(t, []string{"abe", "Tanaka", "Yamada", "Abe"}, names(asc))

	desc := Apply(rows, Query{SortKey: "guests", SortDir: SortDesc}, d)
	assert.Equal(t, []string{"Abe", "Yamada", "Tanaka", "abe"}, names(desc))

	byStart := Apply(rows, Query{SortKey: "start", SortDir: SortAsc}, d)
	assert.Equal(t, []string{"abe", "Yamada", "Tanaka", "Abe"}, names(byStart))

	// Input order untouched.
	assert.Equal(t, []string{"Tanaka", "abe", "Yamada", "Abe"}, names(rows))
}

func TestApplyStringSortIsCaseInsensitiveAndStable(t *testing.T) {
	d := bookingDescriptor()
	got := Apply(sampleBookings(), Query{SortKey: "name", SortDir: SortAsc}, d)

	// "abe" and "Abe" compare equal; original relative order wins.
	assert.Equal(t, []string{"abe", "Abe", "Tanaka", "Yamada"}, names(got))
}

func TestApplyUnsortedKeepsFetchOrder(t *testing.T) {
	d := bookingDescriptor()
	got := Apply(sampleBookings(), Query{}, d)
	assert.Equal(t, []string{"Tanaka", "abe", "Yamada", "Abe"}, names(got))
}

func TestApplyIgnoresUnsortableAndUnknownColumns(t *testing.T) {
	d := bookingDescriptor()
	rows := sampleBookings()

	for _, key := range []string{"note", "bogus"} {
		got := Apply(rows, Query{SortKey: key, SortDir: SortAsc}, d)
		assert.Equal(t, names(rows), names(got), key)
	}
}

func TestApplySearchMatchesSubstringCaseInsensitive(t *testing.T) {
	d := bookingDescriptor()

	got := Apply(sampleBookings(), Query{Search: "ABE"}, d)
	assert.Equal(t, []string{"abe", "Abe"}, names(got))

	got = Apply(sampleBookings(), Query{Search: "  ama "}, d)
	assert.Equal(t, []string{"Yamada"}, names(got))
}

func TestApplySearchFiltersBeforeSorting(t *testing.T) {
	d := bookingDescriptor()
	got := Apply(sampleBookings(), Query{Search: "abe", SortKey: "guests", SortDir: SortDesc}, d)
	assert.Equal(t, []string{"Abe", "abe"}, names(got))
}

func TestBuildEmptyStateIsExplicit(t *testing.T) {
	d := bookingDescriptor()
	view := Build(sampleBookings(), Query{Search: "no such guest"}, d)

	require.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)
	assert.Zero(t, view.Total)
	assert.Len(t, view.Headers, 4)
}

func TestBuildRendersHeadersAndRows(t *testing.T) {
	d := bookingDescriptor()
	q := Query{SortKey: "guests", SortDir: SortAsc}
	view := Build(sampleBookings(), q, d)

	require.Len(t, view.Headers, 4)
	byKey := map[string]Header{}
	for _, h := range view.Headers {
		byKey[h.Key] = h
	}

	assert.Equal(t, SortAsc, byKey["guests"].Dir)
	assert.Equal(t, SortDesc, byKey["guests"].NextDir, "active column advances in the cycle")
	assert.Equal(t, SortNone, byKey["name"].Dir)
	assert.Equal(t, SortAsc, byKey["name"].NextDir, "inactive column starts ascending")

	require.Len(t, view.Rows, 4)
	assert.Equal(t, uint(2), view.Rows[0].ID)
	assert.Equal(t, []string{"abe", "2", "2026-07-01 18:00"}, view.Rows[0].Cells[:3])
	assert.Equal(t, 4, view.Total)
}

func TestCompareCoversColumnValueTypes(t *testing.T) {
	now := time.Now()
	cases := []struct {
		a, b any
		want int
	}{
		{"a", "B", -1},
		{3, 3, 0},
		{uint(9), uint(2), 1},
		{1.5, 2.5, -1},
		{false, true, -1},
		{now, now.Add(time.Hour), -1},
	}
	for _, tc := range cases {
		got := compare(tc.a, tc.b)
		switch {
		case tc.want < 0:
			assert.Negative(t, got, fmt.Sprint(tc.a, tc.b))
		case tc.want > 0:
			assert.Positive(t, got, fmt.Sprint(tc.a, tc.b))
		default:
			assert.Zero(t, got, fmt.Sprint(tc.a, tc.b))
		}
	}
}
