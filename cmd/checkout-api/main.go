package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nikolayk812/bnpl-checkout/internal/cache"
	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
	"github.com/nikolayk812/bnpl-checkout/internal/checkout"
	"github.com/nikolayk812/bnpl-checkout/internal/config"
	"github.com/nikolayk812/bnpl-checkout/internal/httpx"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
	"github.com/nikolayk812/bnpl-checkout/internal/repository"
	"github.com/nikolayk812/bnpl-checkout/internal/scalapay"
	"github.com/nikolayk812/bnpl-checkout/internal/shipping"
	"github.com/nikolayk812/bnpl-checkout/internal/telemetry"
)

const serviceName = "checkout-api"

func main() {
	if err := run(); err != nil {
		slog.Error("checkout-api failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := telemetry.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("telemetry.NewLogger: %w", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry.SetupTracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("tracer shutdown", "error", err)
		}
	}()

	products, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("loadCatalog: %w", err)
	}

	shippingSvc, closeShipping, err := newShippingService(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("newShippingService: %w", err)
	}
	defer closeShipping()

	gateway := newPaymentGateway(cfg, logger)

	svc := checkout.NewService(products, shippingSvc, gateway, logger)
	router := httpx.NewRouter(httpx.NewHandler(svc, logger), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Info("checkout-api listening", "addr", srv.Addr, "payment_gateway", cfg.PaymentGateway)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("srv.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}
	return nil
}

// loadCatalog reads the catalog once at startup: PostgreSQL first, then a
// JSON file, then the built-in development products.
func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	var (
		c      *catalog.Catalog
		source string
		err    error
	)

	switch {
	case cfg.DatabaseURL != "":
		source = "postgres"

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		defer pool.Close()

		c, err = catalog.Load(ctx, repository.NewProduct(pool))
		if err != nil {
			return nil, fmt.Errorf("catalog.Load: %w", err)
		}
	case cfg.CatalogFile != "":
		source = cfg.CatalogFile

		c, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("catalog.LoadFile: %w", err)
		}
	default:
		source = "default"
		c = catalog.Default()
	}

	logger.Info("catalog loaded", "source", source, "products", c.Len())
	return c, nil
}

func newShippingService(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ShippingService, func(), error) {
	fixed := shipping.NewFixedCost(cfg.Shipping, logger)
	if !cfg.ShippingCacheEnabled() {
		return fixed, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis.Ping[%s]: %w", cfg.RedisAddr, err)
	}

	cached := shipping.NewCached(fixed, cache.NewRedisCache(client, serviceName), cfg.ShippingCacheTTL, logger)

	return cached, func() {
		if err := client.Close(); err != nil {
			logger.Error("redis close", "error", err)
		}
	}, nil
}

func newPaymentGateway(cfg config.Config, logger *slog.Logger) port.PaymentGateway {
	if cfg.PaymentGateway == config.GatewayScalapay {
		return scalapay.NewGateway(cfg.Scalapay)
	}

	logger.Warn("using fake payment gateway")
	return scalapay.NewFakeGateway(logger)
}
