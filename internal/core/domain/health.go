package domain

import "sync/atomic"

// StoreHealth is the shared live/degraded indicator for the backing store.
// It is written by whichever request observes a store failure or recovery
// and read by the health endpoint; routing decisions stay per-call and
// never consult it, so a stale value can not misdirect traffic.
type StoreHealth struct {
	degraded atomic.Bool
}

func (h *StoreHealth) MarkDegraded() { h.degraded.Store(true) }
func (h *StoreHealth) MarkLive()     { h.degraded.Store(false) }

func (h *StoreHealth) Degraded() bool { return h.degraded.Load() }

// Status renders the flag for the health endpoint.
func (h *StoreHealth) Status() string {
	if h.Degraded() {
		return "degraded"
	}
	return "live"
}
