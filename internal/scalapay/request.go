package scalapay

import (
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/pricing"
)

// CheckoutRequest is the body of POST /v2/orders.
// Optional fields are left empty (or nil) when their source is absent, and
// omitempty keeps them out of the encoded JSON.
type CheckoutRequest struct {
	TotalAmount             Money    `json:"totalAmount"`
	TaxAmount               Money    `json:"taxAmount"`
	ShippingAmount          Money    `json:"shippingAmount"`
	Consumer                Consumer `json:"consumer"`
	Billing                 *Billing `json:"billing,omitempty"`
	Shipping                Shipping `json:"shipping"`
	Items                   []Item   `json:"items"`
	Merchant                Merchant `json:"merchant"`
	OrderExpiryMilliseconds int64    `json:"orderExpiryMilliseconds"`
}

type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Consumer struct {
	GivenNames  string `json:"givenNames"`
	Surname     string `json:"surname"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type Billing struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	Line1       string `json:"line1,omitempty"`
}

type Shipping struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CountryCode string `json:"countryCode"`
	Postcode    string `json:"postcode"`
	Suburb      string `json:"suburb"`
	Line1       string `json:"line1"`
}

type Item struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	GTIN     string `json:"gtin"`
	Category string `json:"category"`
	Price    Money  `json:"price"`
}

type Merchant struct {
	RedirectCancelURL  string `json:"redirectCancelUrl"`
	RedirectConfirmURL string `json:"redirectConfirmUrl"`
}

func NewCheckoutRequest(order domain.Order, cfg Config) CheckoutRequest {
	amount := pricing.ComputeOrderAmount(order)

	return CheckoutRequest{
		TotalAmount:    newMoney(domain.EUR(amount.OrderTotal)),
		TaxAmount:      newMoney(domain.EUR(amount.OrderVatSubtotal)),
		ShippingAmount: newMoney(domain.EUR(amount.ShippingSubtotal)),
		Consumer:       newConsumer(order.User),
		Billing:        newBilling(order.Billing),
		Shipping:       newShipping(order.Shipping.To),
		Items:          newItems(order.Items),
		Merchant: Merchant{
			RedirectCancelURL:  cfg.MerchantRedirectCancelURL,
			RedirectConfirmURL: cfg.MerchantRedirectSuccessURL,
		},
		OrderExpiryMilliseconds: cfg.OrderExpiration.Milliseconds(),
	}
}

func newMoney(m domain.Money) Money {
	return Money{
		Amount:   m.Amount.String(),
		Currency: m.Currency.String(),
	}
}

func newConsumer(u domain.User) Consumer {
	c := Consumer{
		GivenNames: u.FirstName,
		Surname:    u.LastName,
	}
	if u.Email != "" {
		c.Email = u.Email
	}
	if u.PhoneNumber != "" {
		c.PhoneNumber = u.PhoneNumber
	}
	return c
}

func newBilling(b *domain.BillingInfo) *Billing {
	if b == nil {
		return nil
	}

	out := &Billing{}
	if b.Name != "" {
		out.Name = b.Name
	}
	if b.PhoneNumber != "" {
		out.PhoneNumber = b.PhoneNumber
	}
	// address fields go together or not at all
	if b.Address != nil {
		out.CountryCode = b.Address.CountryCode
		out.Suburb = b.Address.City
		out.Postcode = b.Address.PostCode
		out.Line1 = b.Address.AddressLine
	}
	return out
}

func newShipping(to domain.ShippingInfo) Shipping {
	s := Shipping{
		Name:        to.Name,
		CountryCode: to.Address.CountryCode,
		Postcode:    to.Address.PostCode,
		Suburb:      to.Address.City,
		Line1:       to.Address.AddressLine,
	}
	if to.PhoneNumber != "" {
		s.PhoneNumber = to.PhoneNumber
	}
	return s
}

func newItems(items []domain.OrderItem) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, Item{
			SKU:      item.SKU,
			Quantity: int(item.Quantity),
			Name:     item.Name,
			GTIN:     item.GTIN,
			Category: item.Category,
			Price:    newMoney(domain.EUR(pricing.UnitGross(item))),
		})
	}
	return out
}
