// Package fallback supplies the degraded-mode result set for the listing
// service. When the store is unreachable the public site still shows a
// small, fixed selection of listings instead of an error page.
package fallback

import (
	"time"

	"listing-service/internal/core/domain"
)

// Provider pages through a static dataset with the same pagination math as
// the live path. Filters are deliberately not applied here: degraded mode
// trades filter fidelity for availability, and pretending the static set
// matched arbitrary criteria would be worse than ignoring them.
type Provider struct {
	properties []domain.Property
}

// NewProvider wraps the given dataset; nil selects the built-in one.
func NewProvider(properties []domain.Property) *Provider {
	if properties == nil {
		properties = DefaultDataset()
	}
	return &Provider{properties: properties}
}

func (p *Provider) ListPage(page, limit int) *domain.PageResult {
	total := len(p.properties)
	offset := domain.Pagination{Page: page, Limit: limit}.Offset()

	if offset >= total || limit < 1 {
		return domain.NewPageResult(nil, total, page, limit)
	}

	end := offset + limit
	if end > total {
		end = total
	}

	// Copy the window so callers can not mutate the shared dataset.
	data := make([]domain.Property, end-offset)
	copy(data, p.properties[offset:end])

	return domain.NewPageResult(data, total, page, limit)
}

func intPtr(v int) *int { return &v }

// DefaultDataset is the built-in degraded-mode selection: three
// representative listings, newest first, matching the live sort order.
func DefaultDataset() []domain.Property {
	return []domain.Property{
		{
			ID:          "cfd9b4d6-3a1f-4a8e-9a6e-0f2f3f6f8a01",
			Title:       "Apartament 2 camere, Viziru 1",
			Description: "Apartament decomandat, etaj intermediar, aproape de parc.",
			Type:        domain.TypeApartament,
			Location:    "Viziru 1, Brăila",
			City:        "Brăila",
			County:      "Brăila",
			Price:       61000,
			Area:        54,
			Rooms:       2,
			Floor:       intPtr(3),
			YearBuilt:   intPtr(1982),
			Badges:      []string{"Ofertă nouă"},
			Amenities:   []string{"centrală proprie", "balcon închis"},
			CreatedAt:   time.Date(2024, 4, 18, 9, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 4, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          "7be2a9c4-51d0-4f2b-8f33-9f1f5d2c7b02",
			Title:       "Casă cu curte, Lacu Dulce",
			Description: "Casă solidă cu teren de 300 mp, pretabilă renovării.",
			Type:        domain.TypeCasa,
			Location:    "Lacu Dulce, Brăila",
			City:        "Brăila",
			County:      "Brăila",
			Price:       85000,
			Area:        120,
			Rooms:       4,
			Badges:      []string{},
			Amenities:   []string{"curte", "garaj"},
			CreatedAt:   time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:          "1a6c0e7f-9d42-4c58-b6a1-4e8d9c0a3d03",
			Title:       "Vilă P+1, Cartier Radu Negru",
			Description: "Vilă modernă, finisaje premium, gata de mutare.",
			Type:        domain.TypeVila,
			Location:    "Radu Negru, Brăila",
			City:        "Brăila",
			County:      "Brăila",
			Price:       120000,
			Area:        180,
			Rooms:       5,
			YearBuilt:   intPtr(2019),
			Badges:      []string{"Premium"},
			Amenities:   []string{"curte amenajată", "panouri solare"},
			CreatedAt:   time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
		},
	}
}
