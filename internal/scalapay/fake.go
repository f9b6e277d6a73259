package scalapay

import (
	"context"
	"log/slog"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

// FakeGateway is for local development only. It answers every checkout with
// the shipping recipient name as redirect URL.
type FakeGateway struct {
	logger *slog.Logger
}

var _ port.PaymentGateway = (*FakeGateway)(nil)

func NewFakeGateway(logger *slog.Logger) *FakeGateway {
	return &FakeGateway{logger: logger}
}

func (f *FakeGateway) Checkout(ctx context.Context, order domain.Order) (port.CheckoutResult, error) {
	req := NewCheckoutRequest(order, Config{})
	f.logger.InfoContext(ctx, "fake checkout",
		"order_id", order.ID,
		"total_amount", req.TotalAmount.Amount,
		"items", len(req.Items),
	)

	return port.CheckoutResult{RedirectURL: order.Shipping.To.Name}, nil
}
