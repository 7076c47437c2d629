package rest

import (
	"net/url"
	"reflect"
	"testing"

	"listing-service/internal/core/domain"
)

func TestParseListingQueryDefaults(t *testing.T) {
	filters, page, limit := ParseListingQuery(url.Values{})

	if page != 1 || limit != 10 {
		t.Fatalf("page/limit = %d/%d, want 1/10", page, limit)
	}
	if !reflect.DeepEqual(filters, domain.PropertyFilters{}) {
		t.Fatalf("empty query produced filters: %+v", filters)
	}
}

func TestParseListingQueryPagination(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"plain", "3", "25", 3, 25},
		{"zero page", "0", "10", 1, 10},
		{"negative page", "-2", "10", 1, 10},
		{"garbage page", "abc", "10", 1, 10},
		{"zero limit", "1", "0", 1, 10},
		{"garbage limit", "1", "ten", 1, 10},
		{"limit capped", "1", "5000", 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := url.Values{"page": {tc.page}, "limit": {tc.limit}}
			_, page, limit := ParseListingQuery(q)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("page/limit = %d/%d, want %d/%d", page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestParseListingQueryNormalizesSearch(t *testing.T) {
	q := url.Values{"search": {"  Brăila "}, "type": {"Apartament"}}
	filters, _, _ := ParseListingQuery(q)

	if filters.Search != "braila" {
		t.Fatalf("search = %q, want folded %q", filters.Search, "braila")
	}
	if filters.Type != "apartament" {
		t.Fatalf("type = %q, want %q", filters.Type, "apartament")
	}
}

func TestParseListingQueryPriceRange(t *testing.T) {
	q := url.Values{"priceMin": {"40000"}, "priceMax": {"not-a-number"}, "areaMax": {"120.5"}}
	filters, _, _ := ParseListingQuery(q)

	if filters.PriceMin == nil || *filters.PriceMin != 40000 {
		t.Fatalf("priceMin = %v", filters.PriceMin)
	}
	if filters.PriceMax != nil {
		t.Fatal("non-numeric priceMax must be dropped, not errored")
	}
	if filters.AreaMax == nil || *filters.AreaMax != 120.5 {
		t.Fatalf("areaMax = %v", filters.AreaMax)
	}
}

func TestParseRooms(t *testing.T) {
	cases := []struct {
		name         string
		raw          string
		wantRooms    []int
		wantFivePlus bool
	}{
		{"empty", "", nil, false},
		{"single", "2", []int{2}, false},
		{"list", "1,2,3", []int{1, 2, 3}, false},
		{"five plus alone", "5+", nil, true},
		{"mixed", "2,3,5+", []int{2, 3}, true},
		{"garbage tokens dropped", "2,x,,4", []int{2, 4}, false},
		{"spaces", " 1 , 2 ", []int{1, 2}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rooms, fivePlus := parseRooms(tc.raw)
			if !reflect.DeepEqual(rooms, tc.wantRooms) || fivePlus != tc.wantFivePlus {
				t.Fatalf("parseRooms(%q) = %v/%v, want %v/%v", tc.raw, rooms, fivePlus, tc.wantRooms, tc.wantFivePlus)
			}
		})
	}
}
