package domain

import "time"

// Actions carried by property events.
const (
	PropertyCreated = "property.created"
	PropertyUpdated = "property.updated"
	PropertyDeleted = "property.deleted"
)

// PropertyEvent notifies downstream consumers about a mutation of the
// listing catalog. Publishing is best-effort; the write path never fails
// because an event could not be delivered.
type PropertyEvent struct {
	Action     string    `json:"action"`
	PropertyID string    `json:"property_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
