package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

const orderJSON = `{
	"po_number": "PO-2024-0001",
	"po_date": "2024-07-15T00:00:00",
	"purchase_office": "Magnova Head Office",
	"created_by_name": "Asha",
	"total_quantity": 3,
	"total_value": 25.0,
	"approval_status": "Pending",
	"items": [
		{"sl_no": 1, "vendor": "Acme", "location": "Pune", "brand": "Nova", "model": "N1", "storage": null, "colour": "Black", "imei": null, "qty": 2, "rate": 10.0, "po_value": 20.0},
		{"sl_no": 2, "vendor": "Acme", "location": "Pune", "brand": "Nova", "model": "N2", "qty": 1, "rate": 5, "po_value": 5}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL+"/api", testLogger(), opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestListOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/purchase-orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if _, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err != nil {
			t.Errorf("expected uuid request id, got %q", r.Header.Get(RequestIDHeader))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "["+orderJSON+"]")
	}, WithToken("secret"))

	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	o := orders[0]
	if o.Number != "PO-2024-0001" || o.Status != model.ApprovalStatusPending || o.Office != model.OfficeHead {
		t.Fatalf("unexpected order header %+v", o)
	}
	if !o.Date.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected po date %v", o.Date)
	}
	if o.TotalQuantity != 3 || !o.TotalValue.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected aggregates as given, got %d / %s", o.TotalQuantity, o.TotalValue)
	}
	if len(o.Items) != 2 || o.Items[0].Colour != "Black" || o.Items[0].Storage != "" {
		t.Fatalf("unexpected items %+v", o.Items)
	}
	if !o.Items[0].Value.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected po value 20, got %s", o.Items[0].Value)
	}
}

func TestCreateOrderSendsPayload(t *testing.T) {
	storage := "128GB"
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/purchase-orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected json content type")
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, orderJSON)
	})

	order := model.NewOrder{
		Date:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Office: model.OfficeHead,
		Items: []model.NewOrderItem{{
			SlNo: 1, Vendor: "Acme", Location: "Pune", Brand: "Nova", Model: "N1",
			Storage: &storage, Qty: 2,
			Rate:  decimal.RequireFromString("10.5"),
			Value: decimal.RequireFromString("21"),
		}},
	}
	created, err := client.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Number != "PO-2024-0001" {
		t.Fatalf("unexpected created order %+v", created)
	}

	if body["po_date"] != "2024-07-15T00:00:00.000Z" {
		t.Fatalf("unexpected po_date %v", body["po_date"])
	}
	if v, ok := body["notes"]; !ok || v != nil {
		t.Fatalf("expected explicit null notes, got %v", v)
	}
	item := body["items"].([]any)[0].(map[string]any)
	if item["rate"] != 10.5 || item["po_value"] != 21.0 || item["qty"] != 2.0 {
		t.Fatalf("expected numeric money fields, got %v", item)
	}
	if item["storage"] != "128GB" || item["colour"] != nil {
		t.Fatalf("unexpected optional fields %v", item)
	}
}

func TestDecideOrderSendsReason(t *testing.T) {
	var got decisionRequest
	var raw map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/purchase-orders/PO-7/approve" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got)
		_ = json.Unmarshal(data, &raw)
		_, _ = io.WriteString(w, `{"po_number":"PO-7","approval_status":"Rejected","po_date":"2024-07-15"}`)
	})

	decided, err := client.DecideOrder(context.Background(), "PO-7", model.DecisionFor(model.Reject("")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.Status != model.ApprovalStatusRejected {
		t.Fatalf("expected rejected, got %s", decided.Status)
	}
	if got.Action != "reject" || got.RejectionReason == nil || *got.RejectionReason != "" {
		t.Fatalf("expected empty reason forwarded, got %+v", got)
	}

	if _, err := client.DecideOrder(context.Background(), "PO-7", model.DecisionFor(model.Approve())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := raw["rejection_reason"]; !ok || v != nil {
		t.Fatalf("expected null reason on approve, got %v", v)
	}
}

func TestCurrentUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"name":"Asha","email":"asha@magnova.in","role":"Purchase","organization":"Magnova"}`)
	})

	user, err := client.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RolePurchase || user.Organization != "Magnova" || user.Name != "Asha" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestGatewayErrorsCarryDetail(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		detail string
	}{
		{name: "string detail", status: http.StatusBadRequest, body: `{"detail":"Vendor Acme is blocked"}`, detail: "Vendor Acme is blocked"},
		{name: "field list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"},{"msg":"value is not a valid float"}]}`, detail: "field required; value is not a valid float"},
		{name: "plain text", status: http.StatusInternalServerError, body: "boom", detail: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := client.ListOrders(context.Background())
			var gwErr *domainErrors.GatewayError
			if !errors.As(err, &gwErr) {
				t.Fatalf("expected GatewayError, got %v", err)
			}
			if gwErr.Status != tc.status || gwErr.Detail != tc.detail {
				t.Fatalf("expected %d %q, got %d %q", tc.status, tc.detail, gwErr.Status, gwErr.Detail)
			}
		})
	}
}

func TestGatewayFailureIsLogged(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestTransportErrorIsNotGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewHTTPClient(url, testLogger(), WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.ListOrders(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var gwErr *domainErrors.GatewayError
	if errors.As(err, &gwErr) {
		t.Fatalf("did not expect GatewayError, got %v", err)
	}
	if got := domainErrors.UserMessage(err, "Failed to fetch purchase orders"); got != "Failed to fetch purchase orders" {
		t.Fatalf("expected fallback notice, got %q", got)
	}
}

func TestFlexibleTimeFormats(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-07-15T10:20:30Z"`:       time.Date(2024, 7, 15, 10, 20, 30, 0, time.UTC),
		`"2024-07-15T10:20:30.123456"`: time.Date(2024, 7, 15, 10, 20, 30, 123456000, time.UTC),
		`"2024-07-15T10:20:30+05:30"`:  time.Date(2024, 7, 15, 4, 50, 30, 0, time.UTC),
		`"2024-07-15"`:                 time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		`null`:                         {},
	}
	for input, want := range cases {
		var got flexibleTime
		if err := json.Unmarshal([]byte(input), &got); err != nil {
			t.Fatalf("%s: unexpected error %v", input, err)
		}
		if !time.Time(got).Equal(want) {
			t.Fatalf("%s: expected %v, got %v", input, want, time.Time(got))
		}
	}
	var bad flexibleTime
	if err := json.Unmarshal([]byte(`"15/07/2024"`), &bad); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestOrderWritesWithoutEchoedOrder(t *testing.T) {
	cases := []struct {
		name  string
		write func(w http.ResponseWriter)
	}{
		{"no content", func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }},
		{"empty ok", func(w http.ResponseWriter) { w.WriteHeader(http.StatusOK) }},
		{"message only", func(w http.ResponseWriter) { _, _ = io.WriteString(w, `{"message":"PO approved"}`) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.Copy(io.Discard, r.Body)
				tc.write(w)
			})

			decided, err := client.DecideOrder(context.Background(), "PO-7", model.DecisionFor(model.Approve()))
			if err != nil {
				t.Fatalf("expected decision to succeed, got %v", err)
			}
			if decided != nil {
				t.Fatalf("expected no order, got %+v", decided)
			}

			order := model.NewOrder{
				Date:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
				Office: model.OfficeHead,
				Items:  []model.NewOrderItem{{SlNo: 1, Vendor: "V", Location: "L", Brand: "B", Model: "M", Qty: 1, Rate: decimal.NewFromInt(5), Value: decimal.NewFromInt(5)}},
			}
			created, err := client.CreateOrder(context.Background(), order)
			if err != nil {
				t.Fatalf("expected create to succeed, got %v", err)
			}
			if created != nil {
				t.Fatalf("expected no order, got %+v", created)
			}
		})
	}
}

func TestMalformedSuccessBodyIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"po_number":`)
	})
	if _, err := client.DecideOrder(context.Background(), "PO-7", model.DecisionFor(model.Approve())); err == nil {
		t.Fatal("expected decode error for truncated body")
	}
}
