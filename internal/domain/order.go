package domain

import (
	"github.com/google/uuid"
)

// Order is assembled once per checkout and never mutated afterwards.
type Order struct {
	ID       uuid.UUID
	User     User
	Shipping Shipping
	Billing  *BillingInfo
	Items    []OrderItem
}

// OrderItem is a catalog product priced at assembly time.
type OrderItem struct {
	SKU               string
	Name              string
	GTIN              string
	Brand             string
	Category          string
	NetUnitPriceInEur Amount
	Vat               VatRate
	Quantity          Quantity
}

func NewOrderItem(p Product, quantity Quantity) OrderItem {
	return OrderItem{
		SKU:               p.SKU,
		Name:              p.Name,
		GTIN:              p.GTIN,
		Brand:             p.Brand,
		Category:          p.Category,
		NetUnitPriceInEur: p.NetUnitPriceInEur,
		Vat:               p.Vat,
		Quantity:          quantity,
	}
}

type Shipping struct {
	To            ShippingInfo
	NetPriceInEur Amount
	Vat           VatRate
}

type ShippingCost struct {
	NetPriceInEur Amount  `json:"netPriceInEur"`
	Vat           VatRate `json:"vat"`
}

type User struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type Address struct {
	CountryCode string
	City        string
	PostCode    string
	AddressLine string
}

type ShippingInfo struct {
	Name        string
	Address     Address
	PhoneNumber string
}

// BillingInfo fields are all optional; a nil Address means no billing address.
type BillingInfo struct {
	Name        string
	Address     *Address
	PhoneNumber string
}
