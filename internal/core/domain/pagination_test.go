package domain

import "testing"

func TestPaginationTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"limit one", 7, 1, 7},
		{"limit larger than total", 3, 100, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pagination{Total: tc.total, Limit: tc.limit}.TotalPages()
			if got != tc.want {
				t.Fatalf("TotalPages(total=%d, limit=%d) = %d, want %d", tc.total, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 10, 20},
		{"page past the end still computes", 99, 10, 980},
		{"invalid page falls back to zero", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pagination{Page: tc.page, Limit: tc.limit}.Offset()
			if got != tc.want {
				t.Fatalf("Offset(page=%d, limit=%d) = %d, want %d", tc.page, tc.limit, got, tc.want)
			}
		})
	}
}

func TestNewPageResultNeverNilData(t *testing.T) {
	res := NewPageResult(nil, 0, 1, 10)
	if res.Data == nil {
		t.Fatal("expected non-nil data slice")
	}
	if res.TotalPages != 0 {
		t.Fatalf("expected 0 total pages for empty result, got %d", res.TotalPages)
	}
}
