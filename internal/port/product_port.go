package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, sku string) (domain.Product, error)
	UpsertProducts(ctx context.Context, products []domain.Product) error
}

var ErrProductNotFound = errors.New("product not found")
