// Package scalapay starts BNPL checkouts through the Scalapay orders API.
package scalapay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

const (
	ordersPath       = "/v2/orders"
	maxResponseBytes = 1 << 20
)

// StatusError is a non-2xx answer. It is a transport failure, not
// port.ErrPaymentGateway.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Gateway struct {
	cfg      Config
	client   *http.Client
	endpoint string
}

var _ port.PaymentGateway = (*Gateway)(nil)

type Option func(*Gateway)

// WithTransport replaces the instrumented default transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(g *Gateway) {
		g.client.Transport = rt
	}
}

func NewGateway(cfg Config, opts ...Option) *Gateway {
	g := &Gateway{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.ClientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + ordersPath,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Gateway) Checkout(ctx context.Context, order domain.Order) (port.CheckoutResult, error) {
	body, err := json.Marshal(NewCheckoutRequest(order, g.cfg))
	if err != nil {
		return port.CheckoutResult{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return port.CheckoutResult{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.AuthToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return port.CheckoutResult{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return port.CheckoutResult{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return port.CheckoutResult{}, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return ParseCheckoutResponse(data)
}
