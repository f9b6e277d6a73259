package scalapay_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/scalapay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutRequest(t *testing.T) {
	// items: 19.98 net + 4.3956 vat, 1.12 net + 0.0448 vat
	// shipping: 5 net + 1.1 vat
	want := map[string]any{
		"totalAmount":    map[string]any{"amount": "31.6404", "currency": "EUR"},
		"taxAmount":      map[string]any{"amount": "5.5404", "currency": "EUR"},
		"shippingAmount": map[string]any{"amount": "6.1", "currency": "EUR"},
		"consumer": map[string]any{
			"givenNames":  "user.firstName.test",
			"surname":     "user.lastName.test",
			"email":       "user.email@test.com",
			"phoneNumber": "+1 2345 6789",
		},
		"billing": map[string]any{
			"name":        "billing.test",
			"phoneNumber": "+2 3456 7890",
			"countryCode": "US",
			"postcode":    "00000",
			"suburb":      "Big City",
			"line1":       "2nd Some Street",
		},
		"shipping": map[string]any{
			"name":        "test",
			"phoneNumber": "+3 4567 8901",
			"countryCode": "IT",
			"postcode":    "20100",
			"suburb":      "Milano",
			"line1":       "Vicolo Stretto, 1",
		},
		"items": []any{
			map[string]any{
				"sku":      "0",
				"quantity": float64(2),
				"name":     "product-0",
				"gtin":     "0400939035768",
				"category": "clothes",
				"price":    map[string]any{"amount": "12.1878", "currency": "EUR"},
			},
			map[string]any{
				"sku":      "2",
				"quantity": float64(1),
				"name":     "product-2",
				"gtin":     "2400939035766",
				"category": "home",
				"price":    map[string]any{"amount": "1.1648", "currency": "EUR"},
			},
		},
		"merchant": map[string]any{
			"redirectCancelUrl":  "https://shop.test/cancel",
			"redirectConfirmUrl": "https://shop.test/success",
		},
		"orderExpiryMilliseconds": float64(600000),
	}

	got := encode(t, scalapay.NewCheckoutRequest(testOrder(), testConfig("https://integration.api.scalapay.com")))

	assert.Empty(t, cmp.Diff(want, got))
}

func TestNewCheckoutRequest_OptionalFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *domain.Order)
		check  func(t *testing.T, payload map[string]any)
	}{
		{
			name: "no email and phone: keys absent",
			modify: func(o *domain.Order) {
				o.User.Email = ""
				o.User.PhoneNumber = ""
			},
			check: func(t *testing.T, payload map[string]any) {
				consumer := payload["consumer"].(map[string]any)
				assert.NotContains(t, consumer, "email")
				assert.NotContains(t, consumer, "phoneNumber")
				assert.Equal(t, "user.firstName.test", consumer["givenNames"])
			},
		},
		{
			name:   "no billing: key absent",
			modify: func(o *domain.Order) { o.Billing = nil },
			check: func(t *testing.T, payload map[string]any) {
				assert.NotContains(t, payload, "billing")
			},
		},
		{
			name: "billing without address: only name and phone",
			modify: func(o *domain.Order) {
				o.Billing.Address = nil
			},
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, map[string]any{
					"name":        "billing.test",
					"phoneNumber": "+2 3456 7890",
				}, payload["billing"])
			},
		},
		{
			name: "billing with address only",
			modify: func(o *domain.Order) {
				o.Billing.Name = ""
				o.Billing.PhoneNumber = ""
			},
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, map[string]any{
					"countryCode": "US",
					"postcode":    "00000",
					"suburb":      "Big City",
					"line1":       "2nd Some Street",
				}, payload["billing"])
			},
		},
		{
			name:   "empty billing: empty object",
			modify: func(o *domain.Order) { o.Billing = &domain.BillingInfo{} },
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, map[string]any{}, payload["billing"])
			},
		},
		{
			name:   "no shipping phone: key absent",
			modify: func(o *domain.Order) { o.Shipping.To.PhoneNumber = "" },
			check: func(t *testing.T, payload map[string]any) {
				shipping := payload["shipping"].(map[string]any)
				assert.NotContains(t, shipping, "phoneNumber")
				assert.Equal(t, "test", shipping["name"])
			},
		},
		{
			name: "free shipping: zero amounts",
			modify: func(o *domain.Order) {
				o.Shipping.NetPriceInEur = domain.ZeroAmount
				o.Shipping.Vat = domain.Vat0
			},
			check: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, map[string]any{"amount": "0", "currency": "EUR"}, payload["shippingAmount"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := testOrder()
			tt.modify(&order)

			tt.check(t, encode(t, scalapay.NewCheckoutRequest(order, testConfig(""))))
		})
	}
}

func encode(t *testing.T, req scalapay.CheckoutRequest) map[string]any {
	t.Helper()

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	return payload
}
