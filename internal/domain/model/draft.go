package model

import "time"

// LineField names an editable column of a draft line.
type LineField string

const (
	FieldVendor   LineField = "vendor"
	FieldLocation LineField = "location"
	FieldBrand    LineField = "brand"
	FieldModel    LineField = "model"
	FieldStorage  LineField = "storage"
	FieldColour   LineField = "colour"
	FieldIMEI     LineField = "imei"
	FieldQty      LineField = "qty"
	FieldRate     LineField = "rate"
)

// DefaultQty is the quantity prefilled on every new line.
const DefaultQty = "1"

// LineItem holds raw form input for one draft line.
type LineItem struct {
	Vendor   string `json:"vendor"`
	Location string `json:"location"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Storage  string `json:"storage"`
	Colour   string `json:"colour"`
	IMEI     string `json:"imei"`
	Qty      string `json:"qty"`
	Rate     string `json:"rate"`
}

// EmptyLine returns the template used for new lines.
func EmptyLine() LineItem {
	return LineItem{Qty: DefaultQty}
}

// Set assigns value to field and reports whether the field is known.
func (l *LineItem) Set(field LineField, value string) bool {
	switch field {
	case FieldVendor:
		l.Vendor = value
	case FieldLocation:
		l.Location = value
	case FieldBrand:
		l.Brand = value
	case FieldModel:
		l.Model = value
	case FieldStorage:
		l.Storage = value
	case FieldColour:
		l.Colour = value
	case FieldIMEI:
		l.IMEI = value
	case FieldQty:
		l.Qty = value
	case FieldRate:
		l.Rate = value
	default:
		return false
	}
	return true
}

// Draft is an order being composed before submission.
type Draft struct {
	Date   time.Time
	Office Office
	Lines  []LineItem
}

// NewDraft returns a draft dated on the given day with one empty line.
func NewDraft(day time.Time) Draft {
	return Draft{
		Date:   truncateDay(day),
		Office: DefaultOffice,
		Lines:  []LineItem{EmptyLine()},
	}
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	lines := make([]LineItem, len(d.Lines))
	copy(lines, d.Lines)
	d.Lines = lines
	return d
}

func truncateDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}
