package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"listing-service/internal/adapters/fallback"
	"listing-service/internal/core/domain"
)

// fakeStorage serves FindWithFilters from an in-memory slice, already
// sorted newest-first. Only the listing methods matter here.
type fakeStorage struct {
	properties []domain.Property
	err        error
}

func (f *fakeStorage) FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	matched := make([]domain.Property, 0, len(f.properties))
	for _, p := range f.properties {
		if filters.PriceMax != nil && p.Price > *filters.PriceMax {
			continue
		}
		if filters.PriceMin != nil && p.Price < *filters.PriceMin {
			continue
		}
		if filters.Type != "" && filters.Type != "all" && p.Type != filters.Type {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if offset >= total {
		return []domain.Property{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeStorage) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	for i := range f.properties {
		if f.properties[i].ID == id {
			return &f.properties[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) GetRelated(ctx context.Context, id string, limit int) ([]domain.Property, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeStorage) Create(ctx context.Context, p domain.Property) error { return f.err }
func (f *fakeStorage) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	return nil, f.err
}
func (f *fakeStorage) Delete(ctx context.Context, id string) error { return f.err }

func seedProperties(n int) []domain.Property {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	properties := make([]domain.Property, 0, n)
	for i := 0; i < n; i++ {
		properties = append(properties, domain.Property{
			ID:        fmt.Sprintf("prop-%03d", i),
			Title:     fmt.Sprintf("Listing %d", i),
			Type:      domain.TypeApartament,
			Location:  "Brăila",
			Price:     50000 + float64(i)*1000,
			Area:      55,
			Rooms:     2,
			Badges:    []string{},
			Amenities: []string{},
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			UpdatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return properties
}

func TestListPropertiesLivePagination(t *testing.T) {
	storage := &fakeStorage{properties: seedProperties(25)}
	health := &domain.StoreHealth{}
	uc := NewListPropertiesUseCase(storage, fallback.NewProvider(nil), health)

	res, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 3, 10)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Total != 25 {
		t.Fatalf("total = %d, want 25", res.Total)
	}
	if res.TotalPages != 3 {
		t.Fatalf("totalPages = %d, want 3", res.TotalPages)
	}
	if len(res.Data) != 5 {
		t.Fatalf("page 3 of 25 with limit 10: len = %d, want 5", len(res.Data))
	}
	if health.Degraded() {
		t.Fatal("store is healthy, flag must stay live")
	}
}

func TestListPropertiesOutOfRangePage(t *testing.T) {
	storage := &fakeStorage{properties: seedProperties(25)}
	uc := NewListPropertiesUseCase(storage, fallback.NewProvider(nil), &domain.StoreHealth{})

	res, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 9, 10)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(res.Data) != 0 {
		t.Fatalf("page past the end must be empty, got %d rows", len(res.Data))
	}
	if res.Total != 25 || res.TotalPages != 3 {
		t.Fatalf("total/totalPages changed on out-of-range page: %d/%d", res.Total, res.TotalPages)
	}
}

func TestListPropertiesFilterNarrowing(t *testing.T) {
	storage := &fakeStorage{properties: seedProperties(25)}
	uc := NewListPropertiesUseCase(storage, fallback.NewProvider(nil), &domain.StoreHealth{})

	broad, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 1, 100)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	max := 60000.0
	narrow, err := uc.Execute(context.Background(), domain.PropertyFilters{PriceMax: &max}, 1, 100)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if narrow.Total > broad.Total {
		t.Fatalf("narrower filters matched more rows: %d > %d", narrow.Total, broad.Total)
	}
	broadIDs := make(map[string]bool, len(broad.Data))
	for _, p := range broad.Data {
		broadIDs[p.ID] = true
	}
	for _, p := range narrow.Data {
		if !broadIDs[p.ID] {
			t.Fatalf("row %s in narrowed result but not in broad result", p.ID)
		}
	}
}

func TestListPropertiesFallbackOnStoreError(t *testing.T) {
	storage := &fakeStorage{err: errors.New("dial tcp: connection refused")}
	health := &domain.StoreHealth{}
	uc := NewListPropertiesUseCase(storage, fallback.NewProvider(nil), health)

	// Filters are supplied but must be ignored on the fallback path.
	max := 90000.0
	res, err := uc.Execute(context.Background(), domain.PropertyFilters{PriceMax: &max}, 1, 10)
	if err != nil {
		t.Fatalf("degraded listing must not error: %v", err)
	}

	if len(res.Data) == 0 {
		t.Fatal("fallback dataset must not be empty")
	}
	if len(res.Data) != 3 || res.Total != 3 {
		t.Fatalf("expected all 3 fallback listings regardless of priceMax, got %d (total %d)", len(res.Data), res.Total)
	}
	if !health.Degraded() {
		t.Fatal("health flag must report degraded after a store failure")
	}
}

func TestListPropertiesRecoversHealthFlag(t *testing.T) {
	storage := &fakeStorage{properties: seedProperties(3), err: errors.New("timeout")}
	health := &domain.StoreHealth{}
	uc := NewListPropertiesUseCase(storage, fallback.NewProvider(nil), health)

	if _, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 1, 10); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !health.Degraded() {
		t.Fatal("expected degraded after failure")
	}

	storage.err = nil
	if _, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 1, 10); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if health.Degraded() {
		t.Fatal("expected live again after a successful query")
	}
}

func TestListPropertiesNilStorageIsPermanentlyDegraded(t *testing.T) {
	health := &domain.StoreHealth{}
	uc := NewListPropertiesUseCase(nil, fallback.NewProvider(nil), health)

	if !health.Degraded() {
		t.Fatal("nil storage must mark the service degraded at construction")
	}

	res, err := uc.Execute(context.Background(), domain.PropertyFilters{}, 1, 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Data) != 2 || res.Total != 3 {
		t.Fatalf("fallback pagination broken: len=%d total=%d", len(res.Data), res.Total)
	}
}
