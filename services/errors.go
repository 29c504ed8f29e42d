package services

import "fmt"

// NotFoundError reports a missing product, cart or cart item, including
// a cart item whose id exists but belongs to another session's cart.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidArgumentError reports a rejected input value, e.g. a
// non-positive quantity.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// InsufficientStockError reports a quantity that would exceed the
// product's current stock. Available always carries the stock count so
// the client can show it.
type InsufficientStockError struct {
	Available int
	Message   string
}

func (e *InsufficientStockError) Error() string {
	return e.Message
}

func notFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func invalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

func insufficientStock(available int, format string, args ...any) *InsufficientStockError {
	return &InsufficientStockError{Available: available, Message: fmt.Sprintf(format, args...)}
}
