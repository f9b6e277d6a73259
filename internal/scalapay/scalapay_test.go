package scalapay_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/scalapay"
)

const successBody = `{
	"token": "91KZ7JDH04",
	"expires": "2026-10-16T10:00:00.000Z",
	"checkoutUrl": "https://portal.staging.scalapay.com/checkout/91KZ7JDH04"
}`

func testConfig(baseURL string) scalapay.Config {
	return scalapay.Config{
		AuthToken:                  "qhtfs87hjnc12kkos",
		BaseURL:                    baseURL,
		ClientTimeout:              2 * time.Second,
		OrderExpiration:            600000 * time.Millisecond,
		MerchantRedirectSuccessURL: "https://shop.test/success",
		MerchantRedirectCancelURL:  "https://shop.test/cancel",
	}
}

// testOrder has every optional field set.
func testOrder() domain.Order {
	return domain.Order{
		ID: uuid.MustParse("7d0a4c1e-3a55-4b1c-9a57-3c1f1d2b8e10"),
		User: domain.User{
			FirstName:   "user.firstName.test",
			LastName:    "user.lastName.test",
			Email:       "user.email@test.com",
			PhoneNumber: "+1 2345 6789",
		},
		Billing: &domain.BillingInfo{
			Name: "billing.test",
			Address: &domain.Address{
				CountryCode: "US",
				City:        "Big City",
				PostCode:    "00000",
				AddressLine: "2nd Some Street",
			},
			PhoneNumber: "+2 3456 7890",
		},
		Shipping: domain.Shipping{
			To: domain.ShippingInfo{
				Name: "test",
				Address: domain.Address{
					CountryCode: "IT",
					City:        "Milano",
					PostCode:    "20100",
					AddressLine: "Vicolo Stretto, 1",
				},
				PhoneNumber: "+3 4567 8901",
			},
			NetPriceInEur: domain.MustParseAmount("5.00"),
			Vat:           domain.Vat22,
		},
		Items: []domain.OrderItem{
			{
				SKU:               "0",
				Name:              "product-0",
				GTIN:              "0400939035768",
				Brand:             "acme",
				Category:          "clothes",
				NetUnitPriceInEur: domain.MustParseAmount("9.99"),
				Vat:               domain.Vat22,
				Quantity:          2,
			},
			{
				SKU:               "2",
				Name:              "product-2",
				GTIN:              "2400939035766",
				Brand:             "acme",
				Category:          "home",
				NetUnitPriceInEur: domain.MustParseAmount("1.12"),
				Vat:               domain.Vat4,
				Quantity:          1,
			},
		},
	}
}
