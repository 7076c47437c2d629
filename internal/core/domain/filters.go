package domain

// PropertyFilters is the normalized, typed form of a listing request's
// search parameters. Zero values mean "no constraint": the predicate
// compiler emits nothing for them instead of an always-true condition.
type PropertyFilters struct {
	// Search is matched case- and diacritics-insensitively as a substring
	// of title and location. It is expected to be already folded with
	// NormalizeText by the criteria normalizer.
	Search string

	// Type is an exact category match ("apartament", "casa", ...).
	// Empty or "all" disables the constraint.
	Type string

	PriceMin *float64
	PriceMax *float64
	AreaMin  *float64
	AreaMax  *float64

	// Rooms is set membership: a listing matches when its room count is in
	// the set. RoomsFivePlus additionally accepts any count >= 5 (the "5+"
	// option of the public filter). An empty set with RoomsFivePlus unset
	// means no room constraint at all.
	Rooms         []int
	RoomsFivePlus bool
}

// HasRoomsFilter reports whether any room constraint is active.
func (f PropertyFilters) HasRoomsFilter() bool {
	return len(f.Rooms) > 0 || f.RoomsFivePlus
}
