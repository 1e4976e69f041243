package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// DecideCall stores information about DecideOrder invocations.
type DecideCall struct {
	Number   string
	Decision model.Decision
}

// OrderRepositoryStub allows tests to customize gateway order behaviour.
type OrderRepositoryStub struct {
	ListFn   func(context.Context) ([]model.Order, error)
	CreateFn func(context.Context, model.NewOrder) (*model.Order, error)
	DecideFn func(context.Context, string, model.Decision) (*model.Order, error)

	Orders []model.Order

	mu        sync.Mutex
	Created   []model.NewOrder
	Decided   []DecideCall
	ListCalls int
}

// ListOrders returns configured orders.
func (s *OrderRepositoryStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	s.ListCalls++
	s.mu.Unlock()
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// CreateOrder records the submission and returns a pending order.
func (s *OrderRepositoryStub) CreateOrder(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	s.Created = append(s.Created, order)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return OrderFrom("PO-1", order), nil
}

// DecideOrder records the decision and returns the order with its new status.
func (s *OrderRepositoryStub) DecideOrder(ctx context.Context, number string, decision model.Decision) (*model.Order, error) {
	s.mu.Lock()
	s.Decided = append(s.Decided, DecideCall{Number: number, Decision: decision})
	s.mu.Unlock()
	if s.DecideFn != nil {
		return s.DecideFn(ctx, number, decision)
	}
	status := model.ApprovalStatusApproved
	if decision.Action == model.ApprovalReject {
		status = model.ApprovalStatusRejected
	}
	return &model.Order{Number: number, Status: status}, nil
}

// Calls returns copies of the recorded create and decide calls.
func (s *OrderRepositoryStub) Calls() ([]model.NewOrder, []DecideCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.NewOrder(nil), s.Created...), append([]DecideCall(nil), s.Decided...)
}

// ListCount returns how many times ListOrders was called.
func (s *OrderRepositoryStub) ListCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ListCalls
}

// SessionRepositoryStub resolves a fixed operator.
type SessionRepositoryStub struct {
	CurrentFn func(context.Context) (*model.User, error)
	User      model.User
	Err       error
}

// CurrentUser returns configured user or error.
func (s *SessionRepositoryStub) CurrentUser(ctx context.Context) (*model.User, error) {
	if s.CurrentFn != nil {
		return s.CurrentFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	user := s.User
	return &user, nil
}

// GatewayStub combines order and session stubs.
type GatewayStub struct {
	*OrderRepositoryStub
	*SessionRepositoryStub
}

// SignallerStub counts order-change signals.
type SignallerStub struct {
	mu    sync.Mutex
	Count int
}

// OrderChanged records one signal.
func (s *SignallerStub) OrderChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Count++
}

// Signals returns the number of recorded signals.
func (s *SignallerStub) Signals() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Count
}

// OrderFrom builds the pending order the gateway would confirm for submission.
func OrderFrom(number string, submission model.NewOrder) *model.Order {
	order := &model.Order{
		Number:     number,
		Date:       submission.Date,
		Office:     submission.Office,
		Status:     model.ApprovalStatusPending,
		TotalValue: decimal.Zero,
	}
	for _, item := range submission.Items {
		order.Items = append(order.Items, model.OrderItem{
			SlNo:     item.SlNo,
			Vendor:   item.Vendor,
			Location: item.Location,
			Brand:    item.Brand,
			Model:    item.Model,
			Qty:      item.Qty,
			Rate:     item.Rate,
			Value:    item.Value,
		})
		order.TotalQuantity += item.Qty
		order.TotalValue = order.TotalValue.Add(item.Value)
	}
	return order
}
