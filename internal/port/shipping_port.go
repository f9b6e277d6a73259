package port

import (
	"context"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

//go:generate mockery --name=ShippingService --output=./mocks --case=underscore
type ShippingService interface {
	GetCost(ctx context.Context, items []domain.OrderItem, destination domain.Address) (domain.ShippingCost, error)
}
