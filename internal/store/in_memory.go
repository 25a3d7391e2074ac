package store

import (
	"context"
	"sync"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store/db"
)

// inMemory implements ProductStore using an in-memory map keyed by id.
// The store mutex makes the sku uniqueness check atomic, matching the
// unique-index guarantee of the PostgreSQL implementation.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]db.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]db.Product),
		nextID:   1,
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, cerrors.ErrProductNotFound
	}
	return &p, nil
}

// FindBySKU retrieves a product by its SKU.
func (s *inMemory) FindBySKU(_ context.Context, sku string) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Sku == sku {
			return &p, nil
		}
	}
	return nil, cerrors.ErrProductNotFound
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, params db.CreateProductParams) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Sku == params.Sku {
			return nil, cerrors.ErrSKUTaken
		}
	}

	product := db.Product{
		ID:             s.nextID,
		Sku:            params.Sku,
		Name:           params.Name,
		Brand:          params.Brand,
		Size:           params.Size,
		Price:          params.Price,
		PrincipalImage: params.PrincipalImage,
		OtherImages:    params.OtherImages,
	}
	s.nextID++
	s.products[product.ID] = product

	return &product, nil
}

// Update overwrites an existing product's row.
func (s *inMemory) Update(_ context.Context, params db.UpdateProductParams) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[params.ID]; !exists {
		return nil, cerrors.ErrProductNotFound
	}

	product := db.Product{
		ID:             params.ID,
		Sku:            params.Sku,
		Name:           params.Name,
		Brand:          params.Brand,
		Size:           params.Size,
		Price:          params.Price,
		PrincipalImage: params.PrincipalImage,
		OtherImages:    params.OtherImages,
	}
	s.products[product.ID] = product

	return &product, nil
}

// DeleteBySKU deletes a product by its SKU.
func (s *inMemory) DeleteBySKU(_ context.Context, sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.products {
		if p.Sku == sku {
			delete(s.products, id)
			return nil
		}
	}
	return cerrors.ErrProductNotFound
}
