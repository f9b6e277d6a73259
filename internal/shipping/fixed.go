// Package shipping provides ShippingService implementations.
package shipping

import (
	"context"
	"log/slog"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

// FixedCost charges the same shipping cost for every order and destination.
type FixedCost struct {
	cost   domain.ShippingCost
	logger *slog.Logger
}

var _ port.ShippingService = (*FixedCost)(nil)

func NewFixedCost(cost domain.ShippingCost, logger *slog.Logger) *FixedCost {
	logger.Info("created fixed shipping cost service",
		"net_price_eur", cost.NetPriceInEur.String(),
		"vat", int(cost.Vat),
	)
	return &FixedCost{cost: cost, logger: logger}
}

func (f *FixedCost) GetCost(ctx context.Context, _ []domain.OrderItem, destination domain.Address) (domain.ShippingCost, error) {
	f.logger.DebugContext(ctx, "returning fixed shipping cost",
		"country_code", destination.CountryCode,
		"net_price_eur", f.cost.NetPriceInEur.String(),
	)
	return f.cost, nil
}
