package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus describes the review lifecycle of a purchase order.
type ApprovalStatus string

const (
	ApprovalStatusCreated  ApprovalStatus = "Created"
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

// Badge returns the status used for styling; unknown values fall back to Created.
func (s ApprovalStatus) Badge() ApprovalStatus {
	switch s {
	case ApprovalStatusCreated, ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return s
	default:
		return ApprovalStatusCreated
	}
}

// Reviewable reports whether an approver may still decide the order.
func (s ApprovalStatus) Reviewable() bool {
	return s == ApprovalStatusPending
}

// Order is a purchase order as confirmed by the API gateway.
type Order struct {
	Number        string
	Date          time.Time
	Office        Office
	CreatedByName string
	TotalQuantity int
	TotalValue    decimal.Decimal
	Status        ApprovalStatus
	Items         []OrderItem
}

// OrderItem is a line snapshot frozen at order creation.
type OrderItem struct {
	SlNo     int
	Vendor   string
	Location string
	Brand    string
	Model    string
	Storage  string
	Colour   string
	IMEI     string
	Qty      int
	Rate     decimal.Decimal
	Value    decimal.Decimal
}
