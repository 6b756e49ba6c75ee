package product

import (
	"context"

	"goodshop/internal/domain"
)

type Repository interface {
	// ListAll returns every stored product. Row order is unspecified;
	// callers must not depend on it.
	ListAll(ctx context.Context) ([]domain.Product, error)
}
