package repository_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
	"github.com/nikolayk812/bnpl-checkout/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type productRepositorySuite struct {
	suite.Suite

	repo      port.ProductRepository
	pool      *pgxpool.Pool
	container testcontainers.Container
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewProduct(suite.pool)
}

func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *productRepositorySuite) TestUpsertProducts() {
	defer suite.deleteAll()

	first := randomProduct()
	updated := first
	updated.Name = gofakeit.ProductName()
	updated.NetUnitPriceInEur = domain.MustParseAmount("0.01")
	updated.Vat = domain.Vat0

	tests := []struct {
		name      string
		batches   [][]domain.Product
		want      []domain.Product
		wantError string
	}{
		{
			name:    "insert products: ok",
			batches: [][]domain.Product{{first, randomProduct()}},
		},
		{
			name:    "upsert existing sku: last write wins",
			batches: [][]domain.Product{{first}, {updated}},
			want:    []domain.Product{updated},
		},
		{
			name:    "empty batch: ok",
			batches: [][]domain.Product{{}},
			want:    []domain.Product{},
		},
		{
			name:      "empty sku: error",
			batches:   [][]domain.Product{{{Name: "no-sku", Vat: domain.Vat4}}},
			wantError: "sku is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			defer suite.deleteAll()

			t := suite.T()
			ctx := t.Context()

			var err error
			for _, batch := range tt.batches {
				if err = suite.repo.UpsertProducts(ctx, batch); err != nil {
					break
				}
			}
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			want := tt.want
			if want == nil {
				want = slices.Concat(tt.batches...)
			}

			got, err := suite.repo.ListProducts(ctx)
			require.NoError(t, err)
			assertProducts(t, want, got)
		})
	}
}

func (suite *productRepositorySuite) TestUpsertProducts_Atomic() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	valid := randomProduct()
	invalid := randomProduct()
	invalid.Vat = domain.VatRate(5)

	err := suite.repo.UpsertProducts(ctx, []domain.Product{valid, invalid})
	require.ErrorIs(t, err, domain.ErrInvalidVatRate)

	got, err := suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func (suite *productRepositorySuite) TestGetProduct() {
	defer suite.deleteAll()

	stored := randomProduct()
	require.NoError(suite.T(), suite.repo.UpsertProducts(suite.T().Context(), []domain.Product{stored}))

	tests := []struct {
		name      string
		sku       string
		want      domain.Product
		wantErrIs error
		wantError string
	}{
		{
			name: "existing sku: ok",
			sku:  stored.SKU,
			want: stored,
		},
		{
			name:      "unknown sku: not found",
			sku:       gofakeit.UUID(),
			wantErrIs: port.ErrProductNotFound,
		},
		{
			name:      "empty sku: error",
			sku:       "",
			wantError: "sku is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			got, err := suite.repo.GetProduct(t.Context(), tt.sku)
			switch {
			case tt.wantErrIs != nil:
				require.True(t, errors.Is(err, tt.wantErrIs), "got %v", err)
				return
			case tt.wantError != "":
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assertProducts(t, []domain.Product{tt.want}, []domain.Product{got})
		})
	}
}

func (suite *productRepositorySuite) TestUpsertProducts_WithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	p := randomProduct()
	require.NoError(t, repository.NewProductWithTx(tx).UpsertProducts(ctx, []domain.Product{p}))
	require.NoError(t, tx.Rollback(ctx))

	_, err = suite.repo.GetProduct(ctx, p.SKU)
	require.ErrorIs(t, err, port.ErrProductNotFound)
}

func (suite *productRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products")
	suite.NoError(err)
}

func randomProduct() domain.Product {
	price, err := domain.NewAmount(decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2))
	if err != nil {
		panic(err)
	}

	vats := []domain.VatRate{domain.Vat0, domain.Vat4, domain.Vat10, domain.Vat22}

	return domain.Product{
		SKU:               gofakeit.UUID(),
		Name:              gofakeit.ProductName(),
		GTIN:              gofakeit.Numerify("#############"),
		Brand:             gofakeit.Company(),
		Category:          gofakeit.ProductCategory(),
		NetUnitPriceInEur: price,
		Vat:               vats[gofakeit.IntN(len(vats))],
	}
}

// assertProducts ignores row order; the table is ordered by sku.
func assertProducts(t *testing.T, expected, actual []domain.Product) {
	t.Helper()

	bySKU := func(a, b domain.Product) int {
		switch {
		case a.SKU < b.SKU:
			return -1
		case a.SKU > b.SKU:
			return 1
		}
		return 0
	}
	expected = slices.SortedFunc(slices.Values(expected), bySKU)
	actual = slices.SortedFunc(slices.Values(actual), bySKU)

	amountComparer := cmp.Comparer(func(x, y domain.Amount) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, amountComparer)
	assert.Empty(t, diff)
}
