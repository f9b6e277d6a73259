package scalapay

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

type checkoutResponse struct {
	Token       *string `json:"token"`
	CheckoutURL *string `json:"checkoutUrl"`
}

// ParseCheckoutResponse accepts only an object carrying string token and
// checkoutUrl fields. Anything else is port.ErrPaymentGateway.
func ParseCheckoutResponse(body []byte) (port.CheckoutResult, error) {
	var resp checkoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return port.CheckoutResult{}, fmt.Errorf("%w: json.Unmarshal: %v", port.ErrPaymentGateway, err)
	}

	if resp.Token == nil {
		return port.CheckoutResult{}, fmt.Errorf("%w: token is missing", port.ErrPaymentGateway)
	}
	if resp.CheckoutURL == nil {
		return port.CheckoutResult{}, fmt.Errorf("%w: checkoutUrl is missing", port.ErrPaymentGateway)
	}

	return port.CheckoutResult{RedirectURL: *resp.CheckoutURL}, nil
}
