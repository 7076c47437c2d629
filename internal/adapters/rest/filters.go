package rest

import (
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/core/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ParseListingQuery normalizes the raw query string of a listing request
// into typed filters plus pagination. Malformed values fall back to their
// defaults; a bad query parameter is never a client error on this endpoint.
func ParseListingQuery(query url.Values) (domain.PropertyFilters, int, int) {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filters := domain.PropertyFilters{
		Search:   domain.NormalizeText(query.Get("search")),
		Type:     domain.NormalizeText(query.Get("type")),
		PriceMin: parseFloat(query, "priceMin"),
		PriceMax: parseFloat(query, "priceMax"),
		AreaMin:  parseFloat(query, "areaMin"),
		AreaMax:  parseFloat(query, "areaMax"),
	}
	filters.Rooms, filters.RoomsFivePlus = parseRooms(query.Get("rooms"))

	return filters, page, limit
}

func parseFloat(query url.Values, key string) *float64 {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseRooms splits the comma-separated room list. The public filter's
// "5+" option becomes an open upper range instead of a set member;
// unparseable tokens are dropped.
func parseRooms(raw string) ([]int, bool) {
	if raw == "" {
		return nil, false
	}

	var rooms []int
	fivePlus := false
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == "5+" {
			fivePlus = true
			continue
		}
		value, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		rooms = append(rooms, value)
	}
	return rooms, fivePlus
}
