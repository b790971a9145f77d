package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/middleware"

	"github.com/storefrontclub/storefront/internal/cart"
	"github.com/storefrontclub/storefront/internal/reviews"
	"github.com/storefrontclub/storefront/internal/shop"
)

const (
	appNamespace = "STOREFRONT"
	appName      = "storefront"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// Resolve the bundled shop this instance serves.
	slug := config.GetStringOrDef("shop.slug", "honeys-fresh-n-frozen")
	baseCfg, cat, ok := shop.Bundled(slug)
	if !ok {
		log.Fatalf("Unknown shop slug %q", slug)
	}
	for _, finding := range shop.ValidateConfig(baseCfg) {
		logger.Error("shop config finding", "field", finding.Field, "message", finding.Message)
	}

	adminURL := config.GetStringOrDef("services.adminpanel.url", "")
	loader := shop.NewLoader(baseCfg, adminURL, logger)

	carts := cart.NewRegistry(logger)
	sweepHooks := apt.LifecycleHooks{
		OnStart: cart.SweepLoopFunc(carts, cart.DefaultSessionTTL/4),
	}

	hd := shop.HandlerDeps{
		Loader:  loader,
		Catalog: cat,
		Carts:   carts,
	}
	handler := shop.NewHandler(hd, config, logger)

	apiKey := config.GetStringOrDef("reviews.api.key", "")
	reviewsClient := reviews.NewHTTPClient("", apiKey)
	reviewsHandler := reviews.NewHandler(reviewsClient, logger)

	// Setup middleware
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: logger,
	})

	// Register with Micro framework
	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", handler, reviewsHandler),
		apt.WithLifecycle(sweepHooks),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s) for shop %s", appName, appVersion, slug)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
