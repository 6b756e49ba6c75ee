package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"goodshop/internal/domain"
	"goodshop/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type checkoutProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type createCheckoutSessionRequest struct {
	Products []checkoutProduct `json:"products" binding:"required"`
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

// createCheckoutSessionHandler turns a list of purchasable line items into a
// provider-hosted checkout session and hands the redirect URL back.
func createCheckoutSessionHandler(logger *log.Logger, starter checkoutStarter, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCheckoutSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		items := make([]domain.CheckoutLineItem, 0, len(req.Products))
		for _, p := range req.Products {
			items = append(items, domain.CheckoutLineItem{Name: p.Name, UnitPrice: p.Price, Quantity: p.Quantity})
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()

		session, err := starter.Create(ctx, items, opts.SuccessURL, opts.CancelURL)
		if err != nil {
			status, msg := classifyCheckoutError(err)
			if status >= http.StatusInternalServerError {
				logger.Printf("checkout handler: create error=%v", err)
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, checkoutSessionResponse{URL: session.URL})
	}
}

func classifyCheckoutError(err error) (int, string) {
	var pErr *checkout.ProviderError
	switch {
	case errors.Is(err, domain.ErrNoLineItems):
		return http.StatusBadRequest, "products list must not be empty"
	case errors.Is(err, domain.ErrBadLineItem):
		return http.StatusBadRequest, "each product needs a positive quantity and a non-negative price"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.As(err, &pErr):
		return http.StatusInternalServerError, pErr.Reason
	case errors.Is(err, domain.ErrMissingRedirectURL):
		return http.StatusInternalServerError, "provider returned no redirect URL"
	}
	return http.StatusInternalServerError, "checkout session creation failed"
}
