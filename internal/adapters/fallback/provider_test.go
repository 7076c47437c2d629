package fallback

import "testing"

func TestListPageSliceInvariant(t *testing.T) {
	p := NewProvider(nil)
	total := len(DefaultDataset())

	cases := []struct {
		name    string
		page    int
		limit   int
		wantLen int
	}{
		{"all on one page", 1, 10, total},
		{"first page of one", 1, 1, 1},
		{"second page of one", 2, 1, 1},
		{"page past the end", 5, 2, 0},
		{"exact boundary", 2, 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := p.ListPage(tc.page, tc.limit)
			if len(res.Data) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(res.Data), tc.wantLen)
			}
			if res.Total != total {
				t.Fatalf("total = %d, want %d", res.Total, total)
			}
			if res.Page != tc.page || res.Limit != tc.limit {
				t.Fatalf("echoed page/limit = %d/%d, want %d/%d", res.Page, res.Limit, tc.page, tc.limit)
			}
		})
	}
}

func TestListPageReturnsCopies(t *testing.T) {
	p := NewProvider(nil)

	first := p.ListPage(1, 1)
	first.Data[0].Title = "mutated"

	again := p.ListPage(1, 1)
	if again.Data[0].Title == "mutated" {
		t.Fatal("ListPage must not expose the shared dataset")
	}
}

func TestDefaultDatasetShape(t *testing.T) {
	ds := DefaultDataset()
	if len(ds) != 3 {
		t.Fatalf("dataset size = %d, want 3", len(ds))
	}
	wantPrices := map[float64]bool{61000: true, 85000: true, 120000: true}
	for _, p := range ds {
		if !wantPrices[p.Price] {
			t.Fatalf("unexpected price %v in fallback dataset", p.Price)
		}
		if p.Badges == nil || p.Amenities == nil {
			t.Fatalf("listing %s has nil badges/amenities", p.ID)
		}
	}
}
