package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/refresh"
	testhelpers "github.com/polkiloo/procurement-console/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func listCalls(repo *testhelpers.OrderRepositoryStub) int {
	return repo.ListCount()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.After(time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for %s", what)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestLoaderLoadsOnStartAndOnOrderChange(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{Number: "PO-1", Status: model.ApprovalStatusPending}}}
	bus := refresh.NewBus(testLogger())
	loader := NewOrderListLoader(repo, bus, 0, testLogger())

	loader.Start(context.Background())
	defer loader.Stop()

	waitFor(t, "initial load", func() bool { return loader.Orders().Loaded })
	view := loader.Orders()
	if len(view.Orders) != 1 || view.Orders[0].Number != "PO-1" {
		t.Fatalf("unexpected orders %+v", view.Orders)
	}

	before := listCalls(repo)
	bus.OrderChanged()
	waitFor(t, "reload after order change", func() bool { return listCalls(repo) > before })
	waitFor(t, "stamp to follow bus", func() bool {
		return loader.Orders().Stamp == bus.Timestamp(model.DomainOrders)
	})
}

func TestLoaderIgnoresUnrelatedDomains(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	bus := refresh.NewBus(testLogger())
	loader := NewOrderListLoader(repo, bus, 0, testLogger())

	loader.Start(context.Background())
	waitFor(t, "initial load", func() bool { return loader.Orders().Loaded })

	bus.PaymentChanged()
	bus.Trigger(model.DomainInventory)
	time.Sleep(30 * time.Millisecond)
	loader.Stop()

	if calls := listCalls(repo); calls != 1 {
		t.Fatalf("expected only the initial load, got %d calls", calls)
	}
}

func TestLoaderPolls(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	loader := NewOrderListLoader(repo, refresh.NewBus(testLogger()), 5*time.Millisecond, testLogger())

	loader.Start(context.Background())
	waitFor(t, "periodic reloads", func() bool { return listCalls(repo) >= 3 })
	loader.Stop()
}

func TestLoaderFailureKeepsPreviousList(t *testing.T) {
	var fail atomic.Bool
	repo := &testhelpers.OrderRepositoryStub{ListFn: func(context.Context) ([]model.Order, error) {
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return []model.Order{{Number: "PO-1"}}, nil
	}}
	loader := NewOrderListLoader(repo, refresh.NewBus(testLogger()), 0, testLogger())

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fail.Store(true)
	if err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	view := loader.Orders()
	if len(view.Orders) != 1 || view.Err == nil {
		t.Fatalf("expected previous list and recorded error, got %+v", view)
	}
	if got := domainErrors.UserMessage(view.Err, "Failed to fetch purchase orders"); got != "Failed to fetch purchase orders" {
		t.Fatalf("unexpected notice %q", got)
	}

	fail.Store(false)
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loader.Orders().Err != nil {
		t.Fatal("expected error to clear after successful load")
	}
}

func TestLoaderDiscardsStaleResponse(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	repo := &testhelpers.OrderRepositoryStub{ListFn: func(context.Context) ([]model.Order, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			return []model.Order{{Number: "stale"}}, nil
		}
		return []model.Order{{Number: "fresh"}}, nil
	}}
	loader := NewOrderListLoader(repo, refresh.NewBus(testLogger()), 0, testLogger())

	done := make(chan error, 1)
	go func() { done <- loader.Load(context.Background()) }()
	<-entered

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := loader.Orders()
	if len(view.Orders) != 1 || view.Orders[0].Number != "fresh" {
		t.Fatalf("expected newer response to win, got %+v", view.Orders)
	}
}

func TestLoaderOrdersReturnsCopy(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{Number: "PO-1"}}}
	loader := NewOrderListLoader(repo, refresh.NewBus(testLogger()), 0, testLogger())
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view := loader.Orders()
	view.Orders[0].Number = "changed"
	if loader.Orders().Orders[0].Number != "PO-1" {
		t.Fatal("expected loader state to be detached from callers")
	}
}

func TestLoaderStopIsIdempotent(t *testing.T) {
	loader := NewOrderListLoader(&testhelpers.OrderRepositoryStub{}, refresh.NewBus(testLogger()), -time.Second, testLogger())
	if loader.pollInterval != 0 {
		t.Fatalf("expected negative interval to disable polling, got %v", loader.pollInterval)
	}
	loader.Stop()
	loader.Start(context.Background())
	loader.Stop()
	loader.Stop()
}
