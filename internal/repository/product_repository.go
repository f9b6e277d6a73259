package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bnpl-checkout/internal/db"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // bound to the caller's transaction
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := mapProductToDomain(db.GetProductRow(row))
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain[%s]: %w", row.Sku, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, sku string) (domain.Product, error) {
	if sku == "" {
		return domain.Product{}, fmt.Errorf("sku is empty")
	}

	row, err := r.q.GetProduct(ctx, sku)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("sku[%s]: %w", sku, port.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	p, err := mapProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return p, nil
}

// UpsertProducts writes all products in one transaction: either every row lands or none does.
func (r *productRepository) UpsertProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		for _, p := range products {
			params, err := mapProductToParams(p)
			if err != nil {
				return struct{}{}, err
			}

			if err := q.UpsertProduct(ctx, params); err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertProduct[%s]: %w", p.SKU, err)
			}
		}
		return struct{}{}, nil
	})

	return err
}

func mapProductToParams(p domain.Product) (db.UpsertProductParams, error) {
	if p.SKU == "" {
		return db.UpsertProductParams{}, fmt.Errorf("sku is empty")
	}
	if !p.Vat.Valid() {
		return db.UpsertProductParams{}, fmt.Errorf("sku[%s]: %w: %d", p.SKU, domain.ErrInvalidVatRate, int(p.Vat))
	}

	return db.UpsertProductParams{
		Sku:             p.SKU,
		Name:            p.Name,
		Gtin:            p.GTIN,
		Brand:           p.Brand,
		Category:        p.Category,
		NetUnitPriceEur: p.NetUnitPriceInEur.Decimal(),
		Vat:             int16(p.Vat),
	}, nil
}

func mapProductToDomain(row db.GetProductRow) (domain.Product, error) {
	price, err := domain.NewAmount(row.NetUnitPriceEur)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.NewAmount: %w", err)
	}

	vat, err := domain.ParseVatRate(int(row.Vat))
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseVatRate: %w", err)
	}

	return domain.Product{
		SKU:               row.Sku,
		Name:              row.Name,
		GTIN:              row.Gtin,
		Brand:             row.Brand,
		Category:          row.Category,
		NetUnitPriceInEur: price,
		Vat:               vat,
	}, nil
}
