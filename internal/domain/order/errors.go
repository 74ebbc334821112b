package order

import "errors"

// Domain errors for order operations

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrMissingCustomer = errors.New("customer name and email are required")
)
