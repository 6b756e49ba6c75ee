package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"goodshop/internal/config"
	"goodshop/internal/db"
	"goodshop/internal/httpserver"
	"goodshop/internal/migrate"
	productrepo "goodshop/internal/repository/product"
	checkoutsvc "goodshop/internal/service/checkout"
	productsvc "goodshop/internal/service/product"

	"github.com/stripe/stripe-go/v82"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StripeAPIKey == "" {
		logger.Fatalf("STRIPE_API_KEY is not set; refusing to start without payment credentials")
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	if err := migrate.Apply(ctx, dbpool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	stripeClient := stripe.NewClient(cfg.StripeAPIKey)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	checkoutService := checkoutsvc.New(stripeClient, cfg.Currency, logger)

	deps := httpserver.Deps{
		Products: productService,
		Checkout: checkoutService,
	}
	opts := httpserver.Options{
		StaticDir:      cfg.StaticDir,
		SuccessURL:     cfg.SuccessURL(),
		CancelURL:      cfg.CancelURL(),
		RequestTimeout: cfg.RequestTimeout,
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, opts)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
