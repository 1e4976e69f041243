package model

// Office is the purchase office originating an order.
type Office string

const (
	OfficeHead   Office = "Magnova Head Office"
	OfficeBranch Office = "Magnova Branch Office"
)

// DefaultOffice is preselected on a fresh draft.
const DefaultOffice = OfficeHead

// Offices lists selectable purchase offices in display order.
func Offices() []Office {
	return []Office{OfficeHead, OfficeBranch}
}

// Valid reports whether o is one of the selectable offices.
func (o Office) Valid() bool {
	return o == OfficeHead || o == OfficeBranch
}
