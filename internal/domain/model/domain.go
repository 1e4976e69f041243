package model

// Domain names a category of business data whose staleness is tracked independently.
type Domain string

const (
	DomainOrders      Domain = "orders"
	DomainProcurement Domain = "procurement"
	DomainPayments    Domain = "payments"
	DomainLogistics   Domain = "logistics"
	DomainInventory   Domain = "inventory"
	DomainInvoices    Domain = "invoices"
	DomainDashboard   Domain = "dashboard"
	DomainReports     Domain = "reports"
)

var allDomains = []Domain{
	DomainOrders,
	DomainProcurement,
	DomainPayments,
	DomainLogistics,
	DomainInventory,
	DomainInvoices,
	DomainDashboard,
	DomainReports,
}

// AllDomains returns the closed domain set in display order.
func AllDomains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

// Valid reports whether d belongs to the closed domain set.
func (d Domain) Valid() bool {
	for _, known := range allDomains {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDomain converts raw input into a known domain.
func ParseDomain(raw string) (Domain, bool) {
	d := Domain(raw)
	return d, d.Valid()
}
