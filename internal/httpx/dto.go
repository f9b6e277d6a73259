package httpx

const (
	typeInvalidRequest      = "InvalidRequest"
	typeUnavailableProducts = "UnavailableProducts"
	typePaymentGatewayError = "PaymentGatewayError"
	typeInternalServerError = "InternalServerError"
)

type CreateOrderResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type ErrorResponse struct {
	Type string `json:"type"`
}

type InvalidRequestResponse struct {
	Type   string   `json:"type"`
	Errors []string `json:"errors"`
}

type UnavailableProductsResponse struct {
	Type string   `json:"type"`
	SKUs []string `json:"skus"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
