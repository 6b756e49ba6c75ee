package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name  string
	Price float64
}

// Apply inserts sample products for manual testing. Products have no natural
// key besides their storage-assigned id, so idempotency is by name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Name: "Good Mug", Price: 9.5},
		{Name: "Good T-Shirt", Price: 19.99},
		{Name: "Good Tote Bag", Price: 12},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price)
SELECT $1, $2
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Price)
	return err
}
