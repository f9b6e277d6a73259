// Package catalog holds the read-only set of sellable products and resolves
// requested SKUs against it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	products map[string]domain.Product
	skus     []string
}

type ItemRequest struct {
	SKU      string
	Quantity domain.Quantity
}

type UnavailableProductsError struct {
	SKUs []string
}

func (e *UnavailableProductsError) Error() string {
	return fmt.Sprintf("unavailable products: %s", strings.Join(e.SKUs, ", "))
}

func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make(map[string]domain.Product, len(products)),
		skus:     make([]string, 0, len(products)),
	}

	for _, p := range products {
		if p.SKU == "" {
			return nil, fmt.Errorf("product sku is empty")
		}
		if _, ok := c.products[p.SKU]; ok {
			return nil, fmt.Errorf("sku[%s] is duplicated", p.SKU)
		}
		if !p.Vat.Valid() {
			return nil, fmt.Errorf("sku[%s]: %w: %d", p.SKU, domain.ErrInvalidVatRate, p.Vat)
		}

		c.products[p.SKU] = p
		c.skus = append(c.skus, p.SKU)
	}

	return c, nil
}

func Load(ctx context.Context, repo port.ProductRepository) (*Catalog, error) {
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}

	return New(products)
}

// LoadFile reads a JSON array of products.
func LoadFile(path string) (*Catalog, error) {
	products, err := ReadProductsFile(path)
	if err != nil {
		return nil, err
	}

	return New(products)
}

func ReadProductsFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("json.Unmarshal[%s]: %w", path, err)
	}

	return products, nil
}

func (c *Catalog) Product(sku string) (domain.Product, bool) {
	p, ok := c.products[sku]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.skus)
}

// Products returns the products in load order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, 0, len(c.skus))
	for _, sku := range c.skus {
		out = append(out, c.products[sku])
	}
	return out
}

// Resolve maps every request line to an order item, keeping request order.
// If any sku is unknown nothing is resolved and all unknown skus are reported
// in the order they were requested.
func (c *Catalog) Resolve(requests []ItemRequest) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(requests))
	var missing []string

	for _, r := range requests {
		p, ok := c.products[r.SKU]
		if !ok {
			missing = append(missing, r.SKU)
			continue
		}
		items = append(items, domain.NewOrderItem(p, r.Quantity))
	}

	if len(missing) > 0 {
		return nil, &UnavailableProductsError{SKUs: missing}
	}

	return items, nil
}
