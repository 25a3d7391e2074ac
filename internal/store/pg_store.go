package store

import (
	"context"
	"errors"
	"fmt"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// FindByID retrieves a product by its store-assigned identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*db.Product, error) {
	product, err := p.q.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindBySKU retrieves a product by its unique SKU.
// Returns ErrProductNotFound if no product exists with the given SKU.
func (p *PgStore) FindBySKU(ctx context.Context, sku string) (*db.Product, error) {
	product, err := p.q.FindBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by sku: %w", err)
	}
	return &product, nil
}

// Create adds a new product to the system. The insert is attempted
// unconditionally; a unique-index collision on sku returns ErrSKUTaken.
func (p *PgStore) Create(ctx context.Context, params db.CreateProductParams) (*db.Product, error) {
	product, err := p.q.CreateProduct(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, cerrors.ErrSKUTaken
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update overwrites an existing product's row.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, params db.UpdateProductParams) (*db.Product, error) {
	product, err := p.q.UpdateProduct(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteBySKU removes a product by its SKU.
// Returns ErrProductNotFound if no row was removed.
func (p *PgStore) DeleteBySKU(ctx context.Context, sku string) error {
	count, err := p.q.DeleteBySku(ctx, sku)
	if err != nil {
		return fmt.Errorf("failed to delete product by sku: %w", err)
	}
	if count == 0 {
		return cerrors.ErrProductNotFound
	}
	return nil
}
