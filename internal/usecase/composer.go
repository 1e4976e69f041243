package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
)

// RefreshSignaller is told when an order-level change has been confirmed.
type RefreshSignaller interface {
	OrderChanged()
}

// DraftView is a rendering snapshot of the draft with derived values.
type DraftView struct {
	Draft  model.Draft
	Values []decimal.Decimal
	Totals Totals
}

// Composer holds the purchase-order draft of the current operator.
type Composer struct {
	mu    sync.Mutex
	draft model.Draft

	orders    repository.OrderRepository
	validator *OrderValidator
	bus       RefreshSignaller
	logger    *slog.Logger
	now       func() time.Time
}

// NewComposer constructs Composer with a fresh draft.
func NewComposer(orders repository.OrderRepository, validator *OrderValidator, bus RefreshSignaller, logger *slog.Logger) *Composer {
	c := &Composer{
		orders:    orders,
		validator: validator,
		bus:       bus,
		logger:    logger,
		now:       time.Now,
	}
	c.draft = model.NewDraft(c.now())
	return c
}

// AddLine appends an empty line and returns the new line count.
func (c *Composer) AddLine() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Lines = append(c.draft.Lines, model.EmptyLine())
	return len(c.draft.Lines)
}

// RemoveLine drops the line at index. The draft never ends up without lines.
func (c *Composer) RemoveLine(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.draft.Lines) {
		return domainErrors.ErrLineOutOfRange
	}
	lines := make([]model.LineItem, 0, len(c.draft.Lines)-1)
	lines = append(lines, c.draft.Lines[:index]...)
	lines = append(lines, c.draft.Lines[index+1:]...)
	if len(lines) == 0 {
		lines = append(lines, model.EmptyLine())
	}
	c.draft.Lines = lines
	return nil
}

// UpdateLine sets one field on one line without validating the value.
func (c *Composer) UpdateLine(index int, field model.LineField, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.draft.Lines) {
		return domainErrors.ErrLineOutOfRange
	}
	line := c.draft.Lines[index]
	if !line.Set(field, value) {
		return domainErrors.ErrUnknownField
	}
	c.draft.Lines[index] = line
	return nil
}

// SetHeader replaces the draft date and purchase office.
func (c *Composer) SetHeader(date time.Time, office model.Office) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Date = date
	c.draft.Office = office
}

// Draft returns the current draft with line values and totals derived on read.
func (c *Composer) Draft() DraftView {
	c.mu.Lock()
	draft := c.draft.Clone()
	c.mu.Unlock()

	values := make([]decimal.Decimal, len(draft.Lines))
	for i, line := range draft.Lines {
		values[i] = LineValue(line.Qty, line.Rate)
	}
	return DraftView{Draft: draft, Values: values, Totals: TotalsOf(draft.Lines)}
}

// Totals sums quantity and value across the current lines.
func (c *Composer) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TotalsOf(c.draft.Lines)
}

// Reset discards the draft.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = model.NewDraft(c.now())
}

// Submit validates the draft and creates the order through the gateway.
// On failure the draft is left untouched and the error is returned as is.
func (c *Composer) Submit(ctx context.Context) (*model.Order, error) {
	c.mu.Lock()
	draft := c.draft.Clone()
	c.mu.Unlock()

	submission, err := c.validator.ValidateDraft(draft)
	if err != nil {
		return nil, err
	}

	order, err := c.orders.CreateOrder(ctx, submission)
	if err != nil {
		c.logger.Warn("create purchase order failed", slog.Int("lines", len(submission.Items)), slog.String("error", err.Error()))
		return nil, err
	}

	c.Reset()
	c.bus.OrderChanged()
	if order != nil {
		c.logger.Info("purchase order created", slog.String("po_number", order.Number))
	}
	return order, nil
}

// BuildNewOrder coerces raw draft input into a submission.
// Blank or zero quantity becomes 1, blank rate becomes 0, blank optional fields are omitted.
func BuildNewOrder(d model.Draft) model.NewOrder {
	items := make([]model.NewOrderItem, 0, len(d.Lines))
	for i, line := range d.Lines {
		qty := coerceQty(line.Qty)
		rate := parseAmount(line.Rate)
		items = append(items, model.NewOrderItem{
			SlNo:     i + 1,
			Vendor:   line.Vendor,
			Location: line.Location,
			Brand:    line.Brand,
			Model:    line.Model,
			Storage:  optional(line.Storage),
			Colour:   optional(line.Colour),
			IMEI:     optional(line.IMEI),
			Qty:      qty,
			Rate:     rate,
			Value:    decimal.NewFromInt(int64(qty)).Mul(rate),
		})
	}
	return model.NewOrder{Date: d.Date, Office: d.Office, Items: items}
}

func coerceQty(raw string) int {
	n, _ := clampQty(parseAmount(raw))
	if n == 0 {
		return 1
	}
	return n
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
