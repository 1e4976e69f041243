package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// orderResponse mirrors a purchase order as returned by the gateway.
type orderResponse struct {
	PONumber       string              `json:"po_number"`
	PODate         flexibleTime        `json:"po_date"`
	PurchaseOffice string              `json:"purchase_office"`
	CreatedByName  string              `json:"created_by_name"`
	TotalQuantity  int                 `json:"total_quantity"`
	TotalValue     decimal.Decimal     `json:"total_value"`
	ApprovalStatus string              `json:"approval_status"`
	Items          []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	SlNo     int             `json:"sl_no"`
	Vendor   string          `json:"vendor"`
	Location string          `json:"location"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Storage  *string         `json:"storage"`
	Colour   *string         `json:"colour"`
	IMEI     *string         `json:"imei"`
	Qty      int             `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	POValue  decimal.Decimal `json:"po_value"`
}

// orderOrNil returns nil when the gateway confirmed without echoing an order,
// e.g. an empty body or a bare {"message": ...}.
func (r orderResponse) orderOrNil() *model.Order {
	if r.PONumber == "" {
		return nil
	}
	order := r.toModel()
	return &order
}

func (r orderResponse) toModel() model.Order {
	order := model.Order{
		Number:        r.PONumber,
		Date:          time.Time(r.PODate),
		Office:        model.Office(r.PurchaseOffice),
		CreatedByName: r.CreatedByName,
		TotalQuantity: r.TotalQuantity,
		TotalValue:    r.TotalValue,
		Status:        model.ApprovalStatus(r.ApprovalStatus),
		Items:         make([]model.OrderItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, model.OrderItem{
			SlNo:     item.SlNo,
			Vendor:   item.Vendor,
			Location: item.Location,
			Brand:    item.Brand,
			Model:    item.Model,
			Storage:  deref(item.Storage),
			Colour:   deref(item.Colour),
			IMEI:     deref(item.IMEI),
			Qty:      item.Qty,
			Rate:     item.Rate,
			Value:    item.POValue,
		})
	}
	return order
}

// createOrderRequest is the body of POST /purchase-orders.
type createOrderRequest struct {
	PODate         string              `json:"po_date"`
	PurchaseOffice string              `json:"purchase_office"`
	Items          []createItemRequest `json:"items"`
	Notes          *string             `json:"notes"`
}

type createItemRequest struct {
	SlNo     int         `json:"sl_no"`
	Vendor   string      `json:"vendor"`
	Location string      `json:"location"`
	Brand    string      `json:"brand"`
	Model    string      `json:"model"`
	Storage  *string     `json:"storage"`
	Colour   *string     `json:"colour"`
	IMEI     *string     `json:"imei"`
	Qty      int         `json:"qty"`
	Rate     json.Number `json:"rate"`
	POValue  json.Number `json:"po_value"`
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func newCreateOrderRequest(order model.NewOrder) createOrderRequest {
	req := createOrderRequest{
		PODate:         order.Date.UTC().Format(isoMillis),
		PurchaseOffice: string(order.Office),
		Items:          make([]createItemRequest, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		req.Items = append(req.Items, createItemRequest{
			SlNo:     item.SlNo,
			Vendor:   item.Vendor,
			Location: item.Location,
			Brand:    item.Brand,
			Model:    item.Model,
			Storage:  item.Storage,
			Colour:   item.Colour,
			IMEI:     item.IMEI,
			Qty:      item.Qty,
			Rate:     json.Number(item.Rate.String()),
			POValue:  json.Number(item.Value.String()),
		})
	}
	return req
}

// decisionRequest is the body of POST /purchase-orders/{po}/approve.
// rejection_reason is always present, null for approvals.
type decisionRequest struct {
	Action          string  `json:"action"`
	RejectionReason *string `json:"rejection_reason"`
}

type userResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
}

func (u userResponse) toModel() model.User {
	return model.User{
		Name:         u.Name,
		Email:        u.Email,
		Role:         model.Role(u.Role),
		Organization: u.Organization,
	}
}

// errorResponse carries the gateway's "detail", either a message or a list of field errors.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

func parseDetail(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(resp.Detail, &text); err == nil {
		return text
	}
	var fields []fieldError
	if err := json.Unmarshal(resp.Detail, &fields); err == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Msg != "" {
				msgs = append(msgs, f.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// flexibleTime accepts RFC 3339, ISO datetimes without zone and plain dates.
type flexibleTime time.Time

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func (t *flexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = flexibleTime{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("po_date: %w", err)
	}
	if raw == "" {
		*t = flexibleTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = flexibleTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("po_date: unsupported format %q", raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
