package shipping

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikolayk812/bnpl-checkout/internal/cache"
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
	"github.com/nikolayk812/bnpl-checkout/internal/metrics"
	"github.com/nikolayk812/bnpl-checkout/internal/port"
)

// Cached remembers shipping costs per destination and item set for a TTL.
// Cache failures are logged and the underlying service is asked instead.
type Cached struct {
	next   port.ShippingService
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

var _ port.ShippingService = (*Cached)(nil)

func NewCached(next port.ShippingService, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cached) GetCost(ctx context.Context, items []domain.OrderItem, destination domain.Address) (domain.ShippingCost, error) {
	digest, err := costKey(items, destination)
	if err != nil {
		return domain.ShippingCost{}, fmt.Errorf("costKey: %w", err)
	}
	key := c.cache.GenerateKey("cost", digest)

	cached, found, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.ShippingCacheTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "shipping cost cache read failed", "key", key, "error", err)
	case found:
		var cost domain.ShippingCost
		if err := json.Unmarshal(cached, &cost); err == nil {
			metrics.ShippingCacheTotal.WithLabelValues("hit").Inc()
			return cost, nil
		}
		metrics.ShippingCacheTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "shipping cost cache entry is corrupt", "key", key)
	default:
		metrics.ShippingCacheTotal.WithLabelValues("miss").Inc()
	}

	cost, err := c.next.GetCost(ctx, items, destination)
	if err != nil {
		return domain.ShippingCost{}, err
	}

	data, err := json.Marshal(cost)
	if err != nil {
		return domain.ShippingCost{}, fmt.Errorf("json.Marshal: %w", err)
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "shipping cost cache write failed", "key", key, "error", err)
	}

	return cost, nil
}

type costKeyLine struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type costKeyInput struct {
	CountryCode string        `json:"countryCode"`
	City        string        `json:"city"`
	PostCode    string        `json:"postCode"`
	AddressLine string        `json:"addressLine"`
	Items       []costKeyLine `json:"items"`
}

// costKey is a digest of the destination and the ordered sku/quantity lines.
// Fields are JSON-encoded so separators inside values cannot collide.
func costKey(items []domain.OrderItem, destination domain.Address) (string, error) {
	in := costKeyInput{
		CountryCode: destination.CountryCode,
		City:        destination.City,
		PostCode:    destination.PostCode,
		AddressLine: destination.AddressLine,
		Items:       make([]costKeyLine, 0, len(items)),
	}
	for _, item := range items {
		in.Items = append(in.Items, costKeyLine{SKU: item.SKU, Quantity: int(item.Quantity)})
	}

	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
