package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"goodshop/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the downstream collaborators the handlers delegate to.
type Deps struct {
	Products productLister
	Checkout checkoutStarter
}

type productLister interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type checkoutStarter interface {
	Create(ctx context.Context, items []domain.CheckoutLineItem, successURL, cancelURL string) (*domain.CheckoutSession, error)
}

// Options configure the non-routing concerns of the server: where the
// frontend bundle lives, where the provider redirects the payer, and how
// long a request may hold a downstream call.
type Options struct {
	StaticDir      string
	SuccessURL     string
	CancelURL      string
	RequestTimeout time.Duration
}

// buildRouter wires routes for the API and the static frontend fallback.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.Products == nil || deps.Checkout == nil {
		return nil, errors.New("httpserver: nil dependency")
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(logger, deps.Products, opts.RequestTimeout))
	api.POST("/create-checkout-session", createCheckoutSessionHandler(logger, deps.Checkout, opts))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.NoRoute(spaFallback(opts.StaticDir))

	return router, nil
}
