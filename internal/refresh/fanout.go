package refresh

import "github.com/polkiloo/procurement-console/internal/domain/model"

// Change names a business event whose effects fan out to dependent domains.
type Change string

const (
	ChangeOrder       Change = "order"
	ChangeProcurement Change = "procurement"
	ChangePayment     Change = "payment"
	ChangeLogistics   Change = "logistics"
	ChangeInventory   Change = "inventory"
	ChangeInvoice     Change = "invoice"
)

// Orders are upstream of every ledger; leaf domains only feed the aggregates.
var fanOut = map[Change][]model.Domain{
	ChangeOrder: {
		model.DomainOrders,
		model.DomainProcurement,
		model.DomainPayments,
		model.DomainLogistics,
		model.DomainInventory,
		model.DomainInvoices,
		model.DomainDashboard,
		model.DomainReports,
	},
	ChangeProcurement: {model.DomainProcurement, model.DomainInventory, model.DomainDashboard, model.DomainReports},
	ChangePayment:     {model.DomainPayments, model.DomainDashboard, model.DomainReports},
	ChangeLogistics:   {model.DomainLogistics, model.DomainDashboard, model.DomainReports},
	ChangeInventory:   {model.DomainInventory, model.DomainDashboard, model.DomainReports},
	ChangeInvoice:     {model.DomainInvoices, model.DomainDashboard, model.DomainReports},
}

// FanOut returns the domains invalidated by change.
func FanOut(change Change) ([]model.Domain, bool) {
	domains, ok := fanOut[change]
	if !ok {
		return nil, false
	}
	out := make([]model.Domain, len(domains))
	copy(out, domains)
	return out, true
}

// ParseChange converts raw input into a known change.
func ParseChange(raw string) (Change, bool) {
	c := Change(raw)
	_, ok := fanOut[c]
	return c, ok
}

// Signal triggers the fan-out of change and reports whether change is known.
func (b *Bus) Signal(change Change) bool {
	domains, ok := fanOut[change]
	if !ok {
		return false
	}
	b.Trigger(domains...)
	return true
}

func (b *Bus) OrderChanged()       { b.Signal(ChangeOrder) }
func (b *Bus) ProcurementChanged() { b.Signal(ChangeProcurement) }
func (b *Bus) PaymentChanged()     { b.Signal(ChangePayment) }
func (b *Bus) LogisticsChanged()   { b.Signal(ChangeLogistics) }
func (b *Bus) InventoryChanged()   { b.Signal(ChangeInventory) }
func (b *Bus) InvoiceChanged()     { b.Signal(ChangeInvoice) }
