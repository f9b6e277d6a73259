package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

type CreateOrderRequest struct {
	User     *UserRequest     `json:"user" validate:"required"`
	Shipping *ShippingRequest `json:"shipping" validate:"required"`
	Billing  *BillingRequest  `json:"billing,omitempty" validate:"omitempty"`
	Items    []ItemRequest    `json:"items" validate:"required,min=1,dive"`
}

type UserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type AddressRequest struct {
	CountryCode string `json:"countryCode" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostCode    string `json:"postCode" validate:"required"`
	AddressLine string `json:"addressLine" validate:"required"`
}

type ShippingRequest struct {
	Name        string          `json:"name" validate:"required"`
	Address     *AddressRequest `json:"address" validate:"required"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
}

type BillingRequest struct {
	Name        string          `json:"name,omitempty"`
	Address     *AddressRequest `json:"address,omitempty" validate:"omitempty"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
}

type ItemRequest struct {
	SKU      string          `json:"sku" validate:"required"`
	Quantity domain.Quantity `json:"quantity" validate:"required,gt=0"`
}

type OrderCreated struct {
	CheckoutURL string `json:"checkoutUrl"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest reports every violated field as "path: rule".
func validateRequest(v *validator.Validate, req CreateOrderRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), fe.Tag()))
	}

	return &InvalidRequestError{Errors: fields}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func (r CreateOrderRequest) itemRequests() []catalog.ItemRequest {
	out := make([]catalog.ItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, catalog.ItemRequest{SKU: it.SKU, Quantity: it.Quantity})
	}
	return out
}

func (a AddressRequest) toDomain() domain.Address {
	return domain.Address{
		CountryCode: a.CountryCode,
		City:        a.City,
		PostCode:    a.PostCode,
		AddressLine: a.AddressLine,
	}
}

func (u UserRequest) toDomain() domain.User {
	return domain.User{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

func (s ShippingRequest) toDomain() domain.ShippingInfo {
	return domain.ShippingInfo{
		Name:        s.Name,
		Address:     s.Address.toDomain(),
		PhoneNumber: s.PhoneNumber,
	}
}

func (b *BillingRequest) toDomain() *domain.BillingInfo {
	if b == nil {
		return nil
	}

	out := &domain.BillingInfo{
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
	}
	if b.Address != nil {
		addr := b.Address.toDomain()
		out.Address = &addr
	}
	return out
}
