package domain

// Product is the only persisted entity. Prices are stored in major currency
// units; id and created_at are assigned by storage and never change.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	CreatedAt int64   `json:"created_at"`
}
