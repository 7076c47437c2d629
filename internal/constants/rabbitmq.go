package constants

// Exchange for catalog mutation events.
const (
	PropertyEventsExchange = "listing_events_exchange"
)

// Routing keys.
const (
	RoutingKeyPropertyEvents = "catalog.property.changed"
)
