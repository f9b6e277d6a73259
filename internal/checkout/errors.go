package checkout

import (
	"errors"
	"strings"

	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
)

type InvalidRequestError struct {
	Errors []string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + strings.Join(e.Errors, "; ")
}

// PaymentGatewayError hides the gateway's answer from callers; the cause is
// kept for logging only.
type PaymentGatewayError struct {
	cause error
}

func (e *PaymentGatewayError) Error() string {
	return "payment gateway error"
}

func (e *PaymentGatewayError) Unwrap() error {
	return e.cause
}

// IsBusiness reports whether err is one of the typed errors a caller is
// expected to handle. Everything else is internal.
func IsBusiness(err error) bool {
	var (
		invalid     *InvalidRequestError
		unavailable *catalog.UnavailableProductsError
		gateway     *PaymentGatewayError
	)
	return errors.As(err, &invalid) || errors.As(err, &unavailable) || errors.As(err, &gateway)
}

func outcome(err error) string {
	var (
		invalid     *InvalidRequestError
		unavailable *catalog.UnavailableProductsError
		gateway     *PaymentGatewayError
	)

	switch {
	case err == nil:
		return "created"
	case errors.As(err, &invalid):
		return "invalid_request"
	case errors.As(err, &unavailable):
		return "unavailable_products"
	case errors.As(err, &gateway):
		return "payment_gateway_error"
	default:
		return "internal_error"
	}
}
