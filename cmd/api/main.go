package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/velora-motors/storefront-backend/api/routes"
	authsvc "github.com/velora-motors/storefront-backend/internal/auth"
	"github.com/velora-motors/storefront-backend/internal/cart"
	"github.com/velora-motors/storefront-backend/internal/catalog"
	checkoutsvc "github.com/velora-motors/storefront-backend/internal/checkout"
	"github.com/velora-motors/storefront-backend/internal/pricing"
	"github.com/velora-motors/storefront-backend/pkg/auth/session"
	"github.com/velora-motors/storefront-backend/pkg/config"
	"github.com/velora-motors/storefront-backend/pkg/db"
	"github.com/velora-motors/storefront-backend/pkg/logger"
	"github.com/velora-motors/storefront-backend/pkg/metrics"
	"github.com/velora-motors/storefront-backend/pkg/migrate"
	"github.com/velora-motors/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	pricingService, err := pricing.NewService(catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	snapshotStore, err := cart.NewSnapshotStore(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart snapshot store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(snapshotStore, catalogService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutStates, err := checkoutsvc.NewStateStore(redisClient, cfg.Checkout.StateTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout state store", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutStates, cartService, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(sessionManager, cfg.JWT, cfg.DemoAccount, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			registry,
			httpMetrics,
			authService,
			catalogService,
			pricingService,
			cartService,
			checkoutService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
