package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPayment = errors.New("invalid payment details")
	ErrInvalidItem    = errors.New("invalid cart item")
)
