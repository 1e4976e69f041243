package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
	"github.com/polkiloo/procurement-console/internal/refresh"
)

// OrdersView is the purchase order list as last loaded.
type OrdersView struct {
	Orders   []model.Order
	Stamp    refresh.Stamp
	Loaded   bool
	LoadedAt time.Time
	Err      error
}

// OrderListLoader keeps the purchase order list current. It re-fetches when
// the orders domain is invalidated on the bus and, optionally, on a timer.
type OrderListLoader struct {
	source       repository.OrderRepository
	bus          *refresh.Bus
	pollInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time

	generation atomic.Uint64

	stateMu  sync.RWMutex
	applied  uint64
	orders   []model.Order
	stamp    refresh.Stamp
	loaded   bool
	loadedAt time.Time
	lastErr  error

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderListLoader constructs the loader. A zero pollInterval disables the timer.
func NewOrderListLoader(source repository.OrderRepository, bus *refresh.Bus, pollInterval time.Duration, logger *slog.Logger) *OrderListLoader {
	if pollInterval < 0 {
		pollInterval = 0
	}
	return &OrderListLoader{
		source:       source,
		bus:          bus,
		pollInterval: pollInterval,
		logger:       logger,
		now:          time.Now,
	}
}

// Start subscribes to the bus and performs the first load in the background.
func (l *OrderListLoader) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	watcher := refresh.NewWatcher(l.bus, model.DomainOrders)
	snapshots, unsubscribe := l.bus.Subscribe()

	l.wg.Add(1)
	go l.run(runCtx, watcher, snapshots, unsubscribe)
}

// Stop cancels pending loads and waits for them to finish.
func (l *OrderListLoader) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// Orders returns a copy of the current list.
func (l *OrderListLoader) Orders() OrdersView {
	l.stateMu.RLock()
	defer l.stateMu.RUnlock()
	orders := make([]model.Order, len(l.orders))
	copy(orders, l.orders)
	return OrdersView{
		Orders:   orders,
		Stamp:    l.stamp,
		Loaded:   l.loaded,
		LoadedAt: l.loadedAt,
		Err:      l.lastErr,
	}
}

// Load fetches the list once. A result older than one already applied is dropped.
// On failure the previous list is kept and the error is recorded.
func (l *OrderListLoader) Load(ctx context.Context) error {
	stamp := l.bus.Timestamp(model.DomainOrders)
	gen := l.generation.Add(1)

	orders, err := l.source.ListOrders(ctx)

	l.stateMu.Lock()
	defer l.stateMu.Unlock()

	if gen < l.applied {
		l.logger.Debug("discarding stale purchase order list", slog.Uint64("generation", gen), slog.Uint64("applied", l.applied))
		return nil
	}
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	l.applied = gen

	if err != nil {
		l.lastErr = err
		l.logger.Warn("fetch purchase orders failed", slog.String("error", err.Error()))
		return err
	}

	l.orders = orders
	if stamp > l.stamp {
		l.stamp = stamp
	}
	l.loaded = true
	l.loadedAt = l.now()
	l.lastErr = nil
	l.logger.Debug("purchase order list loaded", slog.Int("count", len(orders)), slog.Uint64("stamp", uint64(stamp)))
	return nil
}

func (l *OrderListLoader) run(ctx context.Context, watcher *refresh.Watcher, snapshots <-chan refresh.Snapshot, unsubscribe func()) {
	defer l.wg.Done()
	defer unsubscribe()

	var tick <-chan time.Time
	if l.pollInterval > 0 {
		ticker := time.NewTicker(l.pollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	l.spawn(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if _, advanced := watcher.Advanced(snap); advanced {
				l.spawn(ctx)
			}
		case <-tick:
			l.spawn(ctx)
		}
	}
}

func (l *OrderListLoader) spawn(ctx context.Context) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		_ = l.Load(ctx)
	}()
}
