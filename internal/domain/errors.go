package domain

import "errors"

var (
	// ErrNoLineItems indicates a checkout attempt with an empty item list.
	ErrNoLineItems = errors.New("no line items")
	// ErrBadLineItem indicates a line item with a non-positive quantity or a
	// negative unit price.
	ErrBadLineItem = errors.New("invalid line item")
	// ErrMissingRedirectURL indicates the provider created a session but
	// returned no payer-facing URL, which the caller cannot recover from.
	ErrMissingRedirectURL = errors.New("provider returned no redirect URL")
)
