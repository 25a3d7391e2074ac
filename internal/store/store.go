// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/gocatalog/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its store-assigned identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*db.Product, error)

	// FindBySKU retrieves a single product by its unique SKU.
	// Returns ErrProductNotFound if no product exists with the given SKU.
	FindBySKU(ctx context.Context, sku string) (*db.Product, error)

	// Create adds a new product to the system. The unique index on sku is the
	// source of truth for uniqueness; a colliding insert returns ErrSKUTaken.
	Create(ctx context.Context, params db.CreateProductParams) (*db.Product, error)

	// Update overwrites an existing product's row.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, params db.UpdateProductParams) (*db.Product, error)

	// DeleteBySKU removes a product by its SKU.
	// Returns ErrProductNotFound if no row was removed.
	DeleteBySKU(ctx context.Context, sku string) error
}
