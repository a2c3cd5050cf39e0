package pagination

import (
	"net/url"
	"reflect"
	"testing"
)

func TestPageParameters_Clamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		wantNumber int
		wantSize   int
	}{
		{"in range", 3, 20, 3, 20},
		{"lower bounds", 1, 1, 1, 1},
		{"upper size bound", 1, 50, 1, 50},
		{"zero both", 0, 0, 1, 1},
		{"negative both", -10, -10, 1, 1},
		{"size above max", 2, 51, 2, 50},
		{"size far above max", 2, 100000, 2, 50},
		{"huge page number kept", 100000, 10, 100000, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPageParameters()
			p.SetPageNumber(tt.pageNumber)
			p.SetPageSize(tt.pageSize)

			if got := p.PageNumber(); got != tt.wantNumber {
				t.Errorf("PageNumber() = %d, want %d", got, tt.wantNumber)
			}
			if got := p.PageSize(); got != tt.wantSize {
				t.Errorf("PageSize() = %d, want %d", got, tt.wantSize)
			}
		})
	}
}

func TestPageParameters_Defaults(t *testing.T) {
	t.Parallel()

	p := NewPageParameters()
	if p.PageNumber() != 1 || p.PageSize() != 1 {
		t.Fatalf("defaults = (%d, %d), want (1, 1)", p.PageNumber(), p.PageSize())
	}
}

func TestPageParameters_ReassignmentReclamps(t *testing.T) {
	t.Parallel()

	p := NewPageParameters()
	p.SetPageSize(30)
	p.SetPageSize(-1)
	if p.PageSize() != 1 {
		t.Fatalf("PageSize() = %d, want 1 after reassignment", p.PageSize())
	}
	p.SetPageNumber(5)
	p.SetPageNumber(0)
	if p.PageNumber() != 1 {
		t.Fatalf("PageNumber() = %d, want 1 after reassignment", p.PageNumber())
	}
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantNumber int
		wantSize   int
	}{
		{"both set", "pageNumber=2&pageSize=10", 2, 10},
		{"missing params keep defaults", "", 1, 1},
		{"non-numeric kept at defaults", "pageNumber=abc&pageSize=xyz", 1, 1},
		{"clamped", "pageNumber=-5&pageSize=500", 1, 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			p := FromQuery(q)
			if p.PageNumber() != tt.wantNumber || p.PageSize() != tt.wantSize {
				t.Errorf("FromQuery(%q) = (%d, %d), want (%d, %d)",
					tt.query, p.PageNumber(), p.PageSize(), tt.wantNumber, tt.wantSize)
			}
		})
	}
}

func TestNewPagedList_Windows(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		pageSize   int
		pageNumber int
		wantItems  []int
		wantPages  int
	}{
		{"first page", 3, 1, []int{1, 2, 3}, 3},
		{"middle page", 3, 2, []int{4, 5, 6}, 3},
		{"last partial page", 3, 3, []int{7}, 3},
		{"page beyond source", 3, 4, []int{}, 3},
		{"page far beyond source", 3, 100, []int{}, 3},
		{"whole source on one page", 10, 1, []int{1, 2, 3, 4, 5, 6, 7}, 1},
		{"page size one", 1, 7, []int{7}, 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewPagedList(source, tt.pageSize, tt.pageNumber)

			if !reflect.DeepEqual(l.Items, tt.wantItems) {
				t.Errorf("Items = %v, want %v", l.Items, tt.wantItems)
			}
			if l.TotalCount != len(source) {
				t.Errorf("TotalCount = %d, want %d", l.TotalCount, len(source))
			}
			if l.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", l.TotalPages, tt.wantPages)
			}
			if l.PageSize != tt.pageSize || l.PageNumber != tt.pageNumber {
				t.Errorf("echoed params = (%d, %d), want (%d, %d)",
					l.PageNumber, l.PageSize, tt.pageNumber, tt.pageSize)
			}
		})
	}
}

func TestNewPagedList_EmptySource(t *testing.T) {
	t.Parallel()

	l := NewPagedList([]string{}, 10, 1)
	if len(l.Items) != 0 {
		t.Errorf("Items = %v, want empty", l.Items)
	}
	if l.TotalCount != 0 || l.TotalPages != 0 {
		t.Errorf("metadata = (count=%d, pages=%d), want (0, 0)", l.TotalCount, l.TotalPages)
	}
}

func TestNewPagedList_CopiesWindow(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3}
	l := NewPagedList(source, 2, 1)
	source[0] = 99
	if l.Items[0] != 1 {
		t.Fatalf("Items aliases the source slice: %v", l.Items)
	}
}

func TestToPagedList_UsesClampedParams(t *testing.T) {
	t.Parallel()

	p := NewPageParameters()
	p.SetPageNumber(-3)
	p.SetPageSize(2)

	l := ToPagedList([]int{1, 2, 3}, p)
	if !reflect.DeepEqual(l.Items, []int{1, 2}) {
		t.Errorf("Items = %v, want [1 2]", l.Items)
	}
	if l.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", l.PageNumber)
	}
}

func TestPagedList_Header(t *testing.T) {
	t.Parallel()

	l := NewPagedList([]int{1, 2, 3, 4, 5}, 2, 2)
	h := l.Header()

	want := Header{PageNumber: 2, PageSize: 2, TotalCount: 5, TotalPages: 3}
	if h != want {
		t.Fatalf("Header() = %+v, want %+v", h, want)
	}
}
