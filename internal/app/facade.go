package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/procurement-console/internal/access"
	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
	"github.com/polkiloo/procurement-console/internal/refresh"
	"github.com/polkiloo/procurement-console/internal/usecase"
	"github.com/polkiloo/procurement-console/internal/worker"
)

// PurchaseOrdersRoute is the menu route that guards the order list.
const PurchaseOrdersRoute = "/purchase-orders"

// SessionView is the signed-in operator as the shell renders it.
type SessionView struct {
	User         model.User
	Initial      string
	Capabilities access.Capabilities
}

// Console aggregates the view-model of one operator session.
type Console struct {
	sessions repository.SessionRepository
	bus      *refresh.Bus
	composer *usecase.Composer
	reviewer *usecase.Reviewer
	loader   *worker.OrderListLoader
	menu     access.Menu
	policy   *access.Policy
	logger   *slog.Logger

	mu   sync.Mutex
	user *model.User
}

// NewConsole wires the session view-model.
func NewConsole(
	sessions repository.SessionRepository,
	bus *refresh.Bus,
	composer *usecase.Composer,
	reviewer *usecase.Reviewer,
	loader *worker.OrderListLoader,
	menu access.Menu,
	policy *access.Policy,
	logger *slog.Logger,
) *Console {
	return &Console{
		sessions: sessions,
		bus:      bus,
		composer: composer,
		reviewer: reviewer,
		loader:   loader,
		menu:     menu,
		policy:   policy,
		logger:   logger,
	}
}

// User resolves the operator once and caches it for the session.
func (c *Console) User(ctx context.Context) (model.User, error) {
	c.mu.Lock()
	if c.user != nil {
		user := *c.user
		c.mu.Unlock()
		return user, nil
	}
	c.mu.Unlock()

	user, err := c.sessions.CurrentUser(ctx)
	if err != nil {
		return model.User{}, err
	}

	c.mu.Lock()
	if c.user == nil {
		c.user = user
		c.logger.Info("session resolved", slog.String("role", string(user.Role)), slog.String("organization", user.Organization))
	}
	resolved := *c.user
	c.mu.Unlock()
	return resolved, nil
}

// Session returns the operator with derived header and capability data.
func (c *Console) Session(ctx context.Context) (SessionView, error) {
	user, err := c.User(ctx)
	if err != nil {
		return SessionView{}, err
	}
	return SessionView{User: user, Initial: user.Initial(), Capabilities: c.policy.For(user)}, nil
}

// Menu returns the navigation entries visible to the operator.
func (c *Console) Menu(ctx context.Context) ([]access.Entry, error) {
	user, err := c.User(ctx)
	if err != nil {
		return nil, err
	}
	return access.Filter(c.menu, user.Role), nil
}

// Authorize fails with ErrForbidden unless the operator holds capability.
func (c *Console) Authorize(ctx context.Context, capability access.Capability) error {
	user, err := c.User(ctx)
	if err != nil {
		return err
	}
	if !c.policy.Allowed(user, capability) {
		return domainErrors.ErrForbidden
	}
	return nil
}

// AuthorizeRoute fails with ErrForbidden unless route is in the operator's menu.
func (c *Console) AuthorizeRoute(ctx context.Context, route string) error {
	user, err := c.User(ctx)
	if err != nil {
		return err
	}
	if !access.Allows(c.menu, route, user.Role) {
		return domainErrors.ErrForbidden
	}
	return nil
}

// RefreshState returns the current bus snapshot.
func (c *Console) RefreshState() refresh.Snapshot {
	return c.bus.Snapshot()
}

// Trigger invalidates the named domains and returns the ones that were recognised.
func (c *Console) Trigger(names []string) []model.Domain {
	domains := make([]model.Domain, 0, len(names))
	for _, name := range names {
		if d, ok := model.ParseDomain(name); ok {
			domains = append(domains, d)
		}
	}
	c.bus.Trigger(domains...)
	return domains
}

// TriggerAll invalidates every domain.
func (c *Console) TriggerAll() {
	c.bus.TriggerAll()
}

// Signal applies the fan-out for a named change.
func (c *Console) Signal(change string) error {
	parsed, ok := refresh.ParseChange(change)
	if !ok {
		return domainErrors.ErrNotFound
	}
	c.bus.Signal(parsed)
	return nil
}

// Orders returns the loaded purchase order list, loading it first if needed.
func (c *Console) Orders(ctx context.Context) (worker.OrdersView, error) {
	view := c.loader.Orders()
	if view.Loaded {
		return view, nil
	}
	if err := c.loader.Load(ctx); err != nil {
		return c.loader.Orders(), err
	}
	return c.loader.Orders(), nil
}

// Draft returns the order being composed.
func (c *Console) Draft() usecase.DraftView {
	return c.composer.Draft()
}

// SetDraftHeader sets the order date and purchase office.
func (c *Console) SetDraftHeader(date time.Time, office model.Office) usecase.DraftView {
	c.composer.SetHeader(date, office)
	return c.composer.Draft()
}

// AddDraftLine appends an empty line.
func (c *Console) AddDraftLine() usecase.DraftView {
	c.composer.AddLine()
	return c.composer.Draft()
}

// UpdateDraftLine edits one field of one line.
func (c *Console) UpdateDraftLine(index int, field model.LineField, value string) (usecase.DraftView, error) {
	if err := c.composer.UpdateLine(index, field, value); err != nil {
		return usecase.DraftView{}, err
	}
	return c.composer.Draft(), nil
}

// RemoveDraftLine drops one line.
func (c *Console) RemoveDraftLine(index int) (usecase.DraftView, error) {
	if err := c.composer.RemoveLine(index); err != nil {
		return usecase.DraftView{}, err
	}
	return c.composer.Draft(), nil
}

// SubmitDraft sends the draft to the gateway.
func (c *Console) SubmitDraft(ctx context.Context) (*model.Order, error) {
	return c.composer.Submit(ctx)
}

// Review returns the review dialog state.
func (c *Console) Review() usecase.ReviewState {
	return c.reviewer.State()
}

// OpenReview opens the dialog for a listed order the operator may decide on.
func (c *Console) OpenReview(ctx context.Context, number string) (usecase.ReviewState, error) {
	user, err := c.User(ctx)
	if err != nil {
		return usecase.ReviewState{}, err
	}
	view, err := c.Orders(ctx)
	if err != nil {
		return usecase.ReviewState{}, err
	}

	for _, order := range view.Orders {
		if order.Number != number {
			continue
		}
		if !access.CanReview(user, order) {
			if !access.CanReviewOrders(user) {
				return usecase.ReviewState{}, domainErrors.ErrForbidden
			}
			return usecase.ReviewState{}, domainErrors.ErrNotReviewable
		}
		c.reviewer.Open(order)
		return c.reviewer.State(), nil
	}
	return usecase.ReviewState{}, domainErrors.ErrNotFound
}

// SetReviewReason stores the rejection reason.
func (c *Console) SetReviewReason(reason string) (usecase.ReviewState, error) {
	if err := c.reviewer.SetReason(reason); err != nil {
		return usecase.ReviewState{}, err
	}
	return c.reviewer.State(), nil
}

// Decide approves or rejects the order under review.
func (c *Console) Decide(ctx context.Context, kind model.ApprovalKind) (*model.Order, error) {
	if kind == model.ApprovalReject {
		return c.reviewer.Reject(ctx)
	}
	return c.reviewer.Approve(ctx)
}

// CloseReview dismisses the dialog.
func (c *Console) CloseReview() {
	c.reviewer.Close()
}
