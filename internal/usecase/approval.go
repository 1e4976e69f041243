package usecase

import (
	"context"
	"log/slog"
	"sync"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
)

// ReviewState describes the review dialog.
type ReviewState struct {
	Open   bool
	Order  *model.Order
	Reason string
}

// Reviewer drives the approve/reject dialog. Who may decide which order is
// checked by the caller before Open.
type Reviewer struct {
	mu     sync.Mutex
	open   bool
	order  *model.Order
	reason string

	orders repository.OrderRepository
	bus    RefreshSignaller
	logger *slog.Logger
}

// NewReviewer constructs Reviewer with the dialog closed.
func NewReviewer(orders repository.OrderRepository, bus RefreshSignaller, logger *slog.Logger) *Reviewer {
	return &Reviewer{orders: orders, bus: bus, logger: logger}
}

// Open shows the dialog for order. Switching to another order drops the reason
// typed for the previous one.
func (r *Reviewer) Open(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.order == nil || r.order.Number != order.Number {
		r.reason = ""
	}
	r.open = true
	r.order = &order
}

// Close hides the dialog and clears the reason.
func (r *Reviewer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
}

// SetReason stores the rejection reason typed into the open dialog.
func (r *Reviewer) SetReason(reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return domainErrors.ErrNoReview
	}
	r.reason = reason
	return nil
}

// State returns a copy of the dialog state.
func (r *Reviewer) State() ReviewState {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := ReviewState{Open: r.open, Reason: r.reason}
	if r.order != nil {
		order := *r.order
		state.Order = &order
	}
	return state
}

// Decide sends action for the order identified by number.
// Success closes the dialog and invalidates every order-dependent domain;
// failure leaves the dialog and reason as they were.
func (r *Reviewer) Decide(ctx context.Context, number string, action model.ApprovalAction) (*model.Order, error) {
	order, err := r.orders.DecideOrder(ctx, number, model.DecisionFor(action))
	if err != nil {
		r.logger.Warn("purchase order decision failed",
			slog.String("po_number", number),
			slog.String("action", string(action.Kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	r.mu.Lock()
	r.clearLocked()
	r.mu.Unlock()

	r.bus.OrderChanged()
	r.logger.Info("purchase order decided", slog.String("po_number", number), slog.String("action", string(action.Kind)))
	return order, nil
}

// Approve approves the order under review.
func (r *Reviewer) Approve(ctx context.Context) (*model.Order, error) {
	number, _, err := r.current()
	if err != nil {
		return nil, err
	}
	return r.Decide(ctx, number, model.Approve())
}

// Reject rejects the order under review with the reason typed so far, which may be empty.
func (r *Reviewer) Reject(ctx context.Context) (*model.Order, error) {
	number, reason, err := r.current()
	if err != nil {
		return nil, err
	}
	return r.Decide(ctx, number, model.Reject(reason))
}

func (r *Reviewer) current() (string, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open || r.order == nil {
		return "", "", domainErrors.ErrNoReview
	}
	return r.order.Number, r.reason, nil
}

func (r *Reviewer) clearLocked() {
	r.open = false
	r.order = nil
	r.reason = ""
}
