// Package errors provides custom error types for catalog operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned by the store when no row matches the lookup key.
	ErrProductNotFound = errors.New("product not found")

	// ErrIDNotAllowed is returned when a create request carries a client-supplied id.
	ErrIDNotAllowed = errors.New("id must be null")

	// ErrSKUFormat is returned when a sku does not match the [FAL]+-digits shape.
	ErrSKUFormat = errors.New("sku: Invalid sku format")

	// ErrSKURange is returned when the numeric segment of a sku is outside
	// the accepted range.
	ErrSKURange = errors.New("sku range is bad")

	// ErrSKUTaken is returned when an insert collides with the unique index on sku.
	ErrSKUTaken = errors.New("sku already taken")

	// ErrProductGone is returned by update when the referenced id does not exist.
	ErrProductGone = errors.New("element does not exists")

	// ErrAlreadyDeleted is returned by delete when no row was removed.
	ErrAlreadyDeleted = errors.New("already deleted")
)
