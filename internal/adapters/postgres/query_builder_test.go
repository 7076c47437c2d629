package postgres

import (
	"strings"
	"testing"

	"listing-service/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyFiltersEmpty(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{})
	if where != "" {
		t.Fatalf("empty filters produced a clause: %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("empty filters produced args: %v", args)
	}
}

func TestApplyFiltersTypeAllIsNoConstraint(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{Type: "all"})
	if where != "" || len(args) != 0 {
		t.Fatalf("type=all must compile to nothing, got %q %v", where, args)
	}
}

func TestApplyFiltersSearchSharesOneArg(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{Search: "braila"})

	want := "(p.title_normalized LIKE $1 OR p.location_normalized LIKE $1)"
	if !strings.Contains(where, want) {
		t.Fatalf("clause = %q, want it to contain %q", where, want)
	}
	if len(args) != 1 || args[0] != "%braila%" {
		t.Fatalf("args = %v, want single %%braila%%", args)
	}
}

func TestApplyFiltersArgNumbering(t *testing.T) {
	where, args := applyFilters(domain.PropertyFilters{
		Search:   "centru",
		Type:     domain.TypeApartament,
		PriceMin: floatPtr(40000),
		PriceMax: floatPtr(90000),
		AreaMin:  floatPtr(50),
	})

	for _, placeholder := range []string{"$1", "$2", "$3", "$4", "$5"} {
		if !strings.Contains(where, placeholder) {
			t.Fatalf("clause %q is missing placeholder %s", where, placeholder)
		}
	}
	if strings.Contains(where, "$6") {
		t.Fatalf("clause %q numbers past its args", where)
	}
	if len(args) != 5 {
		t.Fatalf("len(args) = %d, want 5", len(args))
	}
	if args[1] != domain.TypeApartament {
		t.Fatalf("args[1] = %v, want type filter", args[1])
	}
	if args[2] != 40000.0 || args[3] != 90000.0 || args[4] != 50.0 {
		t.Fatalf("range args out of order: %v", args)
	}
}

func TestApplyFiltersRooms(t *testing.T) {
	cases := []struct {
		name       string
		filters    domain.PropertyFilters
		wantClause string
		wantArgs   int
	}{
		{
			name:       "set only",
			filters:    domain.PropertyFilters{Rooms: []int{2, 3}},
			wantClause: "(p.rooms = ANY($1))",
			wantArgs:   1,
		},
		{
			name:       "five plus only",
			filters:    domain.PropertyFilters{RoomsFivePlus: true},
			wantClause: "(p.rooms >= 5)",
			wantArgs:   0,
		},
		{
			name:       "set with five plus",
			filters:    domain.PropertyFilters{Rooms: []int{1, 2}, RoomsFivePlus: true},
			wantClause: "(p.rooms = ANY($1) OR p.rooms >= 5)",
			wantArgs:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := applyFilters(tc.filters)
			if !strings.Contains(where, tc.wantClause) {
				t.Fatalf("clause = %q, want it to contain %q", where, tc.wantClause)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("len(args) = %d, want %d", len(args), tc.wantArgs)
			}
		})
	}
}

func TestApplyFiltersJoinsWithAnd(t *testing.T) {
	where, _ := applyFilters(domain.PropertyFilters{
		Type:     domain.TypeCasa,
		PriceMax: floatPtr(100000),
	})
	if !strings.HasPrefix(where, "WHERE ") {
		t.Fatalf("clause %q must start with WHERE", where)
	}
	if !strings.Contains(where, " AND ") {
		t.Fatalf("two conditions must be AND-joined: %q", where)
	}
}
