package domain

import "errors"

var (
	ErrDuplicateEmail    = errors.New("account with this email already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrRecordNotFound    = errors.New("record not found")
	ErrMalformedRecord   = errors.New("malformed persisted record")
	ErrProductNotFound   = errors.New("product not found")
	ErrOutOfStock        = errors.New("product is out of stock")
)
