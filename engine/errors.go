package engine

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrOrderItemNotFound = errors.New("order item not found")

	// ErrOrderItemExists: adding the same inventory to an order twice is a
	// conflict, the caller should increase the existing item instead.
	ErrOrderItemExists = errors.New("order item already exists, use increase or decrease instead")

	// ErrItemStillSelected: an order item may only be deleted once its
	// quantity has been driven to zero.
	ErrItemStillSelected = errors.New("order item quantity is still above zero")

	ErrQuantityNotPositive = errors.New("quantity must be above zero")
	ErrQuantityBelowZero   = errors.New("quantity cannot drop below zero")
)

// IsNotFound reports whether err means a referenced entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrInventoryNotFound) ||
		errors.Is(err, ErrOrderItemNotFound)
}

// IsConflict reports whether err means the request contradicts current state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrOrderItemExists) || errors.Is(err, ErrItemStillSelected)
}

// IsValidation reports whether err means the request itself was malformed.
func IsValidation(err error) bool {
	return errors.Is(err, ErrQuantityNotPositive) || errors.Is(err, ErrQuantityBelowZero)
}

// notFound maps gorm's record-not-found onto the given sentinel and passes
// every other error through.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
