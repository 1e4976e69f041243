package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewOrder is the submission built from a draft.
type NewOrder struct {
	Date   time.Time      `validate:"required"`
	Office Office         `validate:"required,office"`
	Items  []NewOrderItem `validate:"required,min=1,dive"`
}

// NewOrderItem is one coerced draft line. Optional fields are nil when blank.
type NewOrderItem struct {
	SlNo     int             `validate:"gte=1"`
	Vendor   string          `validate:"required"`
	Location string          `validate:"required"`
	Brand    string          `validate:"required"`
	Model    string          `validate:"required"`
	Storage  *string
	Colour   *string
	IMEI     *string
	Qty      int             `validate:"gte=1"`
	Rate     decimal.Decimal `validate:"gte=0"`
	Value    decimal.Decimal
}

// Decision is the payload sent when an order is approved or rejected.
type Decision struct {
	Action          ApprovalKind
	RejectionReason *string
}

// DecisionFor converts an action into its wire decision.
func DecisionFor(action ApprovalAction) Decision {
	return Decision{Action: action.Kind, RejectionReason: action.RejectionReason()}
}
