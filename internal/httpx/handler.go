package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
	"github.com/nikolayk812/bnpl-checkout/internal/checkout"
)

const maxBodyBytes = 1 << 20

type OrderService interface {
	CreateOrder(ctx context.Context, req checkout.CreateOrderRequest) (checkout.OrderCreated, error)
}

type Handler struct {
	orders OrderService
	logger *slog.Logger
}

func NewHandler(orders OrderService, logger *slog.Logger) *Handler {
	return &Handler{
		orders: orders,
		logger: logger,
	}
}

// CreateOrder decodes the order, runs the checkout and answers with the
// gateway redirect URL.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.CreateOrderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, InvalidRequestResponse{
			Type:   typeInvalidRequest,
			Errors: []string{"body: " + err.Error()},
		})
		return
	}

	created, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResponse{CheckoutURL: created.CheckoutURL})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalid     *checkout.InvalidRequestError
		unavailable *catalog.UnavailableProductsError
		gateway     *checkout.PaymentGatewayError
	)

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusUnprocessableEntity, InvalidRequestResponse{
			Type:   typeInvalidRequest,
			Errors: invalid.Errors,
		})
	case errors.As(err, &unavailable):
		writeJSON(w, http.StatusBadRequest, UnavailableProductsResponse{
			Type: typeUnavailableProducts,
			SKUs: unavailable.SKUs,
		})
	case errors.As(err, &gateway):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Type: typePaymentGatewayError})
	default:
		h.logger.ErrorContext(r.Context(), "create order failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Type: typeInternalServerError})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
