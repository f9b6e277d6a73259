package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

// ErrPaymentGateway is returned, possibly wrapped, when the gateway answered
// but its response could not be understood.
var ErrPaymentGateway = errors.New("payment gateway error")

type CheckoutResult struct {
	RedirectURL string
}

//go:generate mockery --name=PaymentGateway --output=./mocks --case=underscore
type PaymentGateway interface {
	Checkout(ctx context.Context, order domain.Order) (CheckoutResult, error)
}
