package refresh

import "github.com/polkiloo/procurement-console/internal/domain/model"

// Watcher remembers the last stamp a consumer acted on for one domain.
// It is owned by a single consumer and is not safe for concurrent use.
type Watcher struct {
	bus    *Bus
	domain model.Domain
	seen   Stamp
}

// NewWatcher starts watching domain from its current stamp.
func NewWatcher(bus *Bus, domain model.Domain) *Watcher {
	return &Watcher{bus: bus, domain: domain, seen: bus.Timestamp(domain)}
}

// Stale reports whether the domain advanced since the last acknowledged stamp.
func (w *Watcher) Stale() bool {
	return w.bus.Timestamp(w.domain) > w.seen
}

// Advanced acknowledges the domain's stamp in snap when it moved forward.
func (w *Watcher) Advanced(snap Snapshot) (Stamp, bool) {
	stamp, ok := snap[w.domain]
	if !ok || stamp <= w.seen {
		return w.seen, false
	}
	w.seen = stamp
	return stamp, true
}

// Seen returns the last acknowledged stamp.
func (w *Watcher) Seen() Stamp {
	return w.seen
}

// Mark records stamp as acted on. Older stamps are ignored.
func (w *Watcher) Mark(stamp Stamp) {
	if stamp > w.seen {
		w.seen = stamp
	}
}
