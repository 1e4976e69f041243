package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/domain/model"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10

	// RequestIDHeader correlates console logs with gateway logs.
	RequestIDHeader = "X-Request-ID"
)

// HTTPClient talks to the API gateway over HTTP.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes HTTPClient.
type Option func(*HTTPClient)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *HTTPClient) { c.token = token }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTransport replaces the base transport. It is still wrapped for tracing.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.httpClient.Transport = otelhttp.NewTransport(rt) }
}

// NewHTTPClient creates gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger, opts ...Option) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	c := &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListOrders fetches every purchase order visible to the session.
func (c *HTTPClient) ListOrders(ctx context.Context) ([]model.Order, error) {
	var resp []orderResponse
	if err := c.do(ctx, http.MethodGet, nil, &resp, "purchase-orders"); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(resp))
	for _, r := range resp {
		orders = append(orders, r.toModel())
	}
	return orders, nil
}

// CreateOrder submits a new purchase order.
func (c *HTTPClient) CreateOrder(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, newCreateOrderRequest(order), &resp, "purchase-orders"); err != nil {
		return nil, err
	}
	return resp.orderOrNil(), nil
}

// DecideOrder approves or rejects the order identified by number.
func (c *HTTPClient) DecideOrder(ctx context.Context, number string, decision model.Decision) (*model.Order, error) {
	body := decisionRequest{Action: string(decision.Action), RejectionReason: decision.RejectionReason}
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, body, &resp, "purchase-orders", number, "approve"); err != nil {
		return nil, err
	}
	return resp.orderOrNil(), nil
}

// CurrentUser resolves the operator the bearer token belongs to.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*model.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, nil, &resp, "auth", "me"); err != nil {
		return nil, err
	}
	user := resp.toModel()
	return &user, nil
}

func (c *HTTPClient) do(ctx context.Context, method string, in, out any, elem ...string) error {
	endpoint := c.baseURL.JoinPath(elem...)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode gateway request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway %s %s: %w", method, endpoint.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		gwErr := &domainErrors.GatewayError{Status: resp.StatusCode, Detail: parseDetail(raw)}
		c.logger.Error("gateway request failed",
			slog.String("method", method),
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID),
			slog.String("detail", gwErr.Detail),
		)
		return gwErr
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}
	// 204 and other empty successes leave out untouched
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}
