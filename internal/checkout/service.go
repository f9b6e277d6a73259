// Package checkout assembles a priced order from a client request and hands
// it to the payment gateway.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/metrics"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
	"github.com/nikolayk812/bnpl-checkout/internal/pricing"
)

type Service struct {
	catalog  *catalog.Catalog
	shipping port.ShippingService
	gateway  port.PaymentGateway
	validate *validator.Validate
	logger   *slog.Logger
	tracer   trace.Tracer
}

func NewService(c *catalog.Catalog, shipping port.ShippingService, gateway port.PaymentGateway, logger *slog.Logger) *Service {
	return &Service{
		catalog:  c,
		shipping: shipping,
		gateway:  gateway,
		validate: newValidator(),
		logger:   logger,
		tracer:   otel.Tracer("checkout"),
	}
}

// CreateOrder runs validate, resolve, shipping lookup, assemble and gateway
// checkout in sequence and stops at the first failure. Each external call is
// made at most once.
//
// Returned errors are *InvalidRequestError, *catalog.UnavailableProductsError
// or *PaymentGatewayError for business failures; any other error is internal.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderCreated, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.CreateOrder")
	defer span.End()

	start := time.Now()
	created, err := s.createOrder(ctx, req)
	result := outcome(err)
	metrics.ObserveCheckout(result, time.Since(start))

	span.SetAttributes(attribute.String("checkout.outcome", result))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}

	return created, err
}

func (s *Service) createOrder(ctx context.Context, req CreateOrderRequest) (OrderCreated, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return OrderCreated{}, err
	}

	items, err := s.catalog.Resolve(req.itemRequests())
	if err != nil {
		return OrderCreated{}, err
	}

	destination := req.Shipping.Address.toDomain()
	cost, err := s.shippingCost(ctx, items, destination)
	if err != nil {
		return OrderCreated{}, err
	}

	order := domain.Order{
		ID:   uuid.New(),
		User: req.User.toDomain(),
		Shipping: domain.Shipping{
			To:            req.Shipping.toDomain(),
			NetPriceInEur: cost.NetPriceInEur,
			Vat:           cost.Vat,
		},
		Billing: req.Billing.toDomain(),
		Items:   items,
	}

	amount := pricing.ComputeOrderAmount(order)
	s.logger.InfoContext(ctx, "order assembled",
		"order_id", order.ID,
		"items", len(order.Items),
		"order_total", amount.OrderTotal.String(),
		"order_vat", amount.OrderVatSubtotal.String(),
	)

	result, err := s.checkout(ctx, order)
	if err != nil {
		return OrderCreated{}, err
	}

	return OrderCreated{CheckoutURL: result.RedirectURL}, nil
}

func (s *Service) shippingCost(ctx context.Context, items []domain.OrderItem, destination domain.Address) (domain.ShippingCost, error) {
	ctx, span := s.tracer.Start(ctx, "shipping.GetCost")
	defer span.End()

	start := time.Now()
	cost, err := s.shipping.GetCost(ctx, items, destination)
	metrics.ObserveExternalCall("shipping", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		return domain.ShippingCost{}, fmt.Errorf("shipping.GetCost: %w", err)
	}

	if !cost.Vat.Valid() {
		return domain.ShippingCost{}, fmt.Errorf("shipping.GetCost: %w: %d", domain.ErrInvalidVatRate, cost.Vat)
	}

	return cost, nil
}

func (s *Service) checkout(ctx context.Context, order domain.Order) (port.CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "gateway.Checkout",
		trace.WithAttributes(attribute.String("order.id", order.ID.String())))
	defer span.End()

	start := time.Now()
	result, err := s.gateway.Checkout(ctx, order)
	metrics.ObserveExternalCall("gateway", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, port.ErrPaymentGateway) {
			s.logger.WarnContext(ctx, "payment gateway rejected checkout", "order_id", order.ID, "error", err)
			return port.CheckoutResult{}, &PaymentGatewayError{cause: err}
		}
		return port.CheckoutResult{}, fmt.Errorf("gateway.Checkout: %w", err)
	}

	return result, nil
}
