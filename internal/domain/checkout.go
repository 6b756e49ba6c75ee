package domain

// CheckoutLineItem is one purchasable entry in a checkout attempt. UnitPrice
// is in major currency units; conversion to the provider's minor units
// happens at the provider boundary. Request-scoped, never persisted.
type CheckoutLineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int64
}

// CheckoutSession is the provider-issued result of a successful checkout
// creation. The provider owns its lifecycle; this system only hands the
// redirect URL back to the caller.
type CheckoutSession struct {
	ID  string
	URL string
}
