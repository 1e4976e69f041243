package dto

import "time"

// OrderItemResponse is one line of a confirmed purchase order.
type OrderItemResponse struct {
	SlNo     int    `json:"sl_no"`
	Vendor   string `json:"vendor"`
	Location string `json:"location"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Storage  string `json:"storage,omitempty"`
	Colour   string `json:"colour,omitempty"`
	IMEI     string `json:"imei,omitempty"`
	Qty      int    `json:"qty"`
	Rate     string `json:"rate"`
	POValue  string `json:"po_value"`
}

// OrderResponse is a confirmed purchase order with display fields.
type OrderResponse struct {
	PONumber          string              `json:"po_number"`
	PODate            time.Time           `json:"po_date"`
	PurchaseOffice    string              `json:"purchase_office"`
	CreatedByName     string              `json:"created_by_name"`
	TotalQuantity     int                 `json:"total_quantity"`
	TotalValue        string              `json:"total_value"`
	TotalValueDisplay string              `json:"total_value_display"`
	ApprovalStatus    string              `json:"approval_status"`
	Badge             string              `json:"badge"`
	Items             []OrderItemResponse `json:"items"`
}

// OrdersResponse is the loaded purchase order list.
type OrdersResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Stamp    uint64          `json:"stamp"`
	LoadedAt time.Time       `json:"loaded_at"`
	Error    string          `json:"error,omitempty"`
}

// OrderMessageResponse confirms a create or decide action.
type OrderMessageResponse struct {
	Message string         `json:"message"`
	Order   *OrderResponse `json:"order,omitempty"`
}
