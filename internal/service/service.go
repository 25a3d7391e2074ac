// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/db"
)

// ProductService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create adds a new product to the catalog.
	// Returns ErrIDNotAllowed if the request carries a client-supplied id,
	// ErrSKURange if the sku numeric segment is out of range, and
	// ErrSKUTaken if the sku is already in use.
	Create(ctx context.Context, req ProductRequest) (*ProductDto, error)

	// FindBySKU retrieves a single product by its SKU.
	// An absent product is a (nil, nil) result, not an error.
	// Returns ErrSKUFormat or ErrSKURange for a malformed sku.
	FindBySKU(ctx context.Context, sku string) (*ProductDto, error)

	// Update re-saves the product referenced by the request id.
	// Returns ErrProductGone if no product exists with the given id.
	Update(ctx context.Context, req ProductRequest) (*ProductDto, error)

	// DeleteBySKU removes a product by its SKU.
	// Returns ErrAlreadyDeleted if no row was removed, and ErrSKUFormat or
	// ErrSKURange for a malformed sku.
	DeleteBySKU(ctx context.Context, sku string) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// Create adds a new product and returns it as a ProductDto. The insert is
// attempted unconditionally; the unique index on sku is the source of truth
// for uniqueness and a collision surfaces as ErrSKUTaken.
func (s *Service) Create(ctx context.Context, req ProductRequest) (*ProductDto, error) {
	if req.ID != nil {
		return nil, cerrors.ErrIDNotAllowed
	}
	// Field validation constrains sku shape only; magnitude is checked here.
	if _, err := ParseSKU(req.SKU); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, toCreateParams(req))
	if err != nil {
		if errors.Is(err, cerrors.ErrSKUTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(created), nil
}

// FindBySKU retrieves a product by its SKU and returns it as a ProductDto.
// An absent product yields (nil, nil) so the transport can render "no content".
func (s *Service) FindBySKU(ctx context.Context, sku string) (*ProductDto, error) {
	if _, err := ParseSKU(sku); err != nil {
		return nil, err
	}

	product, err := s.repository.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product by sku %s: %w", sku, err)
	}
	return toDto(product), nil
}

// Update looks up the product referenced by the request id and re-saves it.
// Returns ErrProductGone if the id is missing or does not resolve to a row.
func (s *Service) Update(ctx context.Context, req ProductRequest) (*ProductDto, error) {
	if req.ID == nil {
		return nil, cerrors.ErrProductGone
	}

	existing, err := s.repository.FindByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return nil, cerrors.ErrProductGone
		}
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", *req.ID, err)
	}

	// TODO: apply the incoming field values once the intended update semantics
	// are confirmed; this re-saves the stored row as-is.
	updated, err := s.repository.Update(ctx, db.UpdateProductParams{
		ID:             existing.ID,
		Sku:            existing.Sku,
		Name:           existing.Name,
		Brand:          existing.Brand,
		Size:           existing.Size,
		Price:          existing.Price,
		PrincipalImage: existing.PrincipalImage,
		OtherImages:    existing.OtherImages,
	})
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return nil, cerrors.ErrProductGone
		}
		return nil, fmt.Errorf("failed to update product with ID %d: %w", existing.ID, err)
	}
	return toDto(updated), nil
}

// DeleteBySKU deletes a product by its SKU.
// Returns ErrAlreadyDeleted if the product is already absent.
func (s *Service) DeleteBySKU(ctx context.Context, sku string) error {
	if _, err := ParseSKU(sku); err != nil {
		return err
	}

	if err := s.repository.DeleteBySKU(ctx, sku); err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			return cerrors.ErrAlreadyDeleted
		}
		return fmt.Errorf("failed to delete product by sku %s: %w", sku, err)
	}
	return nil
}
