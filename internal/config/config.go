// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/scalapay"
)

const (
	GatewayFake     = "fake"
	GatewayScalapay = "scalapay"
)

type Config struct {
	Port              string
	LogLevel          string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	PaymentGateway string
	Scalapay       scalapay.Config

	Shipping         domain.ShippingCost
	ShippingCacheTTL time.Duration
	RedisAddr        string

	DatabaseURL string
	CatalogFile string

	OTLPEndpoint string
}

func Load() (Config, error) {
	var errs []error

	clientTimeout, err := getEnvMillis("SCALAPAY_CLIENT_TIMEOUT_MS", 3000)
	errs = append(errs, err)

	orderExpiration, err := getEnvMillis("SCALAPAY_ORDER_EXPIRATION_MS", 600000)
	errs = append(errs, err)

	shippingNet, err := domain.ParseAmount(getEnv("SHIPPING_NET_PRICE_EUR", "0"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHIPPING_NET_PRICE_EUR: %w", err))
	}

	shippingVat, err := getEnvVat("SHIPPING_VAT", "0")
	errs = append(errs, err)

	cacheTTL, err := time.ParseDuration(getEnv("SHIPPING_CACHE_TTL", "0s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHIPPING_CACHE_TTL: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,

		PaymentGateway: getEnv("PAYMENT_GATEWAY", GatewayFake),
		Scalapay: scalapay.Config{
			AuthToken:                  os.Getenv("SCALAPAY_AUTH_TOKEN"),
			BaseURL:                    getEnv("SCALAPAY_BASE_URL", "https://integration.api.scalapay.com"),
			ClientTimeout:              clientTimeout,
			OrderExpiration:            orderExpiration,
			MerchantRedirectSuccessURL: os.Getenv("MERCHANT_REDIRECT_SUCCESS_URL"),
			MerchantRedirectCancelURL:  os.Getenv("MERCHANT_REDIRECT_CANCEL_URL"),
		},

		Shipping: domain.ShippingCost{
			NetPriceInEur: shippingNet,
			Vat:           shippingVat,
		},
		ShippingCacheTTL: cacheTTL,
		RedisAddr:        os.Getenv("REDIS_ADDR"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogFile: os.Getenv("CATALOG_FILE"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT[%s] is not a number", c.Port))
	}

	switch c.PaymentGateway {
	case GatewayFake:
	case GatewayScalapay:
		if err := c.Scalapay.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scalapay: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("PAYMENT_GATEWAY[%s] must be %q or %q", c.PaymentGateway, GatewayFake, GatewayScalapay))
	}

	if c.ShippingCacheTTL < 0 {
		errs = append(errs, errors.New("SHIPPING_CACHE_TTL must not be negative"))
	}

	return errors.Join(errs...)
}

// ShippingCacheEnabled reports whether shipping costs go through Redis.
func (c Config) ShippingCacheEnabled() bool {
	return c.ShippingCacheTTL > 0 && c.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvMillis(key string, fallback int) (time.Duration, error) {
	ms, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of milliseconds", key)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func getEnvVat(key, fallback string) (domain.VatRate, error) {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, domain.ErrInvalidVatRate)
	}

	vat, err := domain.ParseVatRate(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return vat, nil
}
