// Command catalog-import upserts the products of a JSON file into PostgreSQL.
//
//	DATABASE_URL=postgres://... catalog-import -file products.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikolayk812/bnpl-checkout/internal/catalog"
	"github.com/nikolayk812/bnpl-checkout/internal/repository"
	"github.com/nikolayk812/bnpl-checkout/internal/telemetry"
)

func main() {
	file := flag.String("file", "", "path to a JSON array of products")
	flag.Parse()

	logger, err := telemetry.NewLogger(os.Stderr, "info")
	if err != nil {
		slog.Error("telemetry.NewLogger", "error", err)
		os.Exit(1)
	}

	if err := run(*file, os.Getenv("DATABASE_URL"), logger); err != nil {
		logger.Error("catalog-import failed", "error", err)
		os.Exit(1)
	}
}

func run(file, databaseURL string, logger *slog.Logger) error {
	if file == "" {
		return fmt.Errorf("-file is required")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := catalog.ReadProductsFile(file)
	if err != nil {
		return fmt.Errorf("catalog.ReadProductsFile: %w", err)
	}

	// same rules the service applies when it loads the catalog
	if _, err := catalog.New(products); err != nil {
		return fmt.Errorf("catalog.New: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.NewProduct(pool).UpsertProducts(ctx, products); err != nil {
		return fmt.Errorf("UpsertProducts: %w", err)
	}

	logger.InfoContext(ctx, "catalog imported", "file", file, "products", len(products))
	return nil
}
