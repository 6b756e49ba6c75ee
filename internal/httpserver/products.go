package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"goodshop/internal/domain"
	"github.com/gin-gonic/gin"
)

// listProductsHandler returns every stored product. A per-request storage
// failure degrades to a 500 instead of taking the process down.
func listProductsHandler(logger *log.Logger, products productLister, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		list, err := products.List(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
				return
			}
			logger.Printf("products handler: list error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}

		if list == nil {
			list = []domain.Product{}
		}
		c.JSON(http.StatusOK, list)
	}
}
