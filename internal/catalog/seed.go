package catalog

import (
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

// Default is the development catalog used when no other source is configured.
func Default() *Catalog {
	c, err := New([]domain.Product{
		{
			SKU:               "0",
			Name:              "product-0",
			GTIN:              "0400939035768",
			Brand:             "acme",
			Category:          "clothes",
			NetUnitPriceInEur: domain.MustParseAmount("9.99"),
			Vat:               domain.Vat22,
		},
		{
			SKU:               "1",
			Name:              "product-1",
			GTIN:              "1400939035767",
			Brand:             "acme",
			Category:          "electronic",
			NetUnitPriceInEur: domain.MustParseAmount("17.54"),
			Vat:               domain.Vat22,
		},
		{
			SKU:               "2",
			Name:              "product-2",
			GTIN:              "2400939035766",
			Brand:             "acme",
			Category:          "home",
			NetUnitPriceInEur: domain.MustParseAmount("1.12"),
			Vat:               domain.Vat22,
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
