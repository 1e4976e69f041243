package refresh

import (
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// Stamp is a logical time. Later transitions always carry a greater stamp.
type Stamp uint64

// Snapshot is a consistent copy of every domain's last invalidation stamp.
type Snapshot map[model.Domain]Stamp

// Bus tracks when each data domain was last invalidated.
// Only Trigger and TriggerAll write; every write is one atomic transition.
type Bus struct {
	mu     sync.RWMutex
	stamps map[model.Domain]Stamp
	last   Stamp
	now    func() time.Time
	logger *slog.Logger

	subs   map[int]chan Snapshot
	nextID int
}

// NewBus creates a bus with every domain stamped at start time.
func NewBus(logger *slog.Logger) *Bus {
	return newBus(time.Now, logger)
}

func newBus(now func() time.Time, logger *slog.Logger) *Bus {
	start := Stamp(now().UnixMilli())
	stamps := make(map[model.Domain]Stamp, len(model.AllDomains()))
	for _, d := range model.AllDomains() {
		stamps[d] = start
	}
	return &Bus{
		stamps: stamps,
		last:   start,
		now:    now,
		logger: logger,
		subs:   make(map[int]chan Snapshot),
	}
}

// Trigger advances the named domains to a new stamp. Unknown names are ignored.
func (b *Bus) Trigger(domains ...model.Domain) {
	b.mu.Lock()
	known := make([]model.Domain, 0, len(domains))
	for _, d := range domains {
		if _, ok := b.stamps[d]; ok {
			known = append(known, d)
		}
	}
	if len(known) == 0 {
		b.mu.Unlock()
		return
	}
	stamp := b.tick()
	for _, d := range known {
		b.stamps[d] = stamp
	}
	b.publish()
	b.mu.Unlock()

	b.logger.Debug("refresh triggered", slog.Any("domains", known), slog.Uint64("stamp", uint64(stamp)))
}

// TriggerAll advances every domain to the same stamp.
func (b *Bus) TriggerAll() {
	b.mu.Lock()
	stamp := b.tick()
	for d := range b.stamps {
		b.stamps[d] = stamp
	}
	b.publish()
	b.mu.Unlock()

	b.logger.Debug("global refresh triggered", slog.Uint64("stamp", uint64(stamp)))
}

// Timestamp returns the last stamp of domain, zero for unknown domains.
func (b *Bus) Timestamp(domain model.Domain) Stamp {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stamps[domain]
}

// Snapshot returns a copy of the whole state.
func (b *Bus) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

// Subscribe delivers the latest snapshot after every transition.
// A slow reader only misses intermediate snapshots. Call cancel to unsubscribe.
func (b *Bus) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// tick must be called with mu held.
func (b *Bus) tick() Stamp {
	next := Stamp(b.now().UnixMilli())
	if next <= b.last {
		next = b.last + 1
	}
	b.last = next
	return next
}

func (b *Bus) snapshotLocked() Snapshot {
	out := make(Snapshot, len(b.stamps))
	for d, s := range b.stamps {
		out[d] = s
	}
	return out
}

// publish must be called with mu held.
func (b *Bus) publish() {
	if len(b.subs) == 0 {
		return
	}
	snap := b.snapshotLocked()
	for _, ch := range b.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// drop the stale pending snapshot and replace it
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
