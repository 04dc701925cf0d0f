package watcher

import "time"

// DefaultCooldown is the refresh cooldown window used when the config
// doesn't override it.
const DefaultCooldown = 200 * time.Millisecond

// Debouncer rate-limits refreshes triggered by filesystem events.
//
// It fires on the leading edge (the first event outside the cooldown
// window refreshes immediately) and guarantees a trailing refresh: if
// events arrive during the cooldown they are swallowed but remembered,
// and exactly one refresh fires once the window expires. Under an
// arbitrarily bursty event stream that bounds refreshes to one per
// window, with the final state never stale by more than one window after
// the last event.
type Debouncer struct {
	cooldown    time.Duration
	lastRefresh time.Time
	pending     bool
}

// NewDebouncer returns a Debouncer with the given cooldown window.
// A non-positive cooldown falls back to DefaultCooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{cooldown: cooldown}
}

// Check advances the state machine and reports whether a refresh should
// happen now. sawEvents is the result of polling the event source since
// the previous Check. Called once per UI tick, never concurrently.
func (d *Debouncer) Check(now time.Time, sawEvents bool) bool {
	inCooldown := now.Sub(d.lastRefresh) < d.cooldown

	if sawEvents {
		if inCooldown {
			d.pending = true
			return false
		}
		d.lastRefresh = now
		d.pending = false
		return true
	}

	if d.pending && !inCooldown {
		d.lastRefresh = now
		d.pending = false
		return true
	}
	return false
}

// Pending reports whether events were swallowed during the current
// cooldown window and a trailing refresh is still owed.
func (d *Debouncer) Pending() bool { return d.pending }
