package service

import (
	"context"
	"errors"
	"testing"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates an unavailable data store.
type failingStore struct {
	error error
}

func (f *failingStore) FindByID(_ context.Context, _ int64) (*db.Product, error) {
	return nil, f.error
}

func (f *failingStore) FindBySKU(_ context.Context, _ string) (*db.Product, error) {
	return nil, f.error
}

func (f *failingStore) Create(_ context.Context, _ db.CreateProductParams) (*db.Product, error) {
	return nil, f.error
}

func (f *failingStore) Update(_ context.Context, _ db.UpdateProductParams) (*db.Product, error) {
	return nil, f.error
}

func (f *failingStore) DeleteBySKU(_ context.Context, _ string) error {
	return f.error
}

// mustCreate seeds the store through the service and returns the created product.
func mustCreate(t *testing.T, svc *Service, req ProductRequest) *ProductDto {
	t.Helper()
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func idPtr(id int64) *int64 {
	return &id
}

func Test_ProductService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		req         ProductRequest
		expectError error
	}{
		{
			name: "Success - fresh sku",
			req:  validRequest(t),
		},
		{
			name: "Error - client-supplied id",
			req: func() ProductRequest {
				r := validRequest(t)
				r.ID = idPtr(1)
				return r
			}(),
			expectError: cerrors.ErrIDNotAllowed,
		},
		{
			name: "Error - sku number below range",
			req: func() ProductRequest {
				r := validRequest(t)
				r.SKU = "FAL-999999"
				return r
			}(),
			expectError: cerrors.ErrSKURange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := NewService(store.NewInMemoryStore())
			// when
			created, err := svc.Create(context.Background(), tc.req)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, created.ID)
			assert.Equal(t, tc.req.SKU, created.SKU)
			assert.Equal(t, tc.req.Name, created.Name)
			assert.True(t, tc.req.Price.Equal(created.Price))
		})
	}
}

func Test_ProductService_Create_DuplicateSKU(t *testing.T) {
	// given
	svc := NewService(store.NewInMemoryStore())
	mustCreate(t, svc, validRequest(t))
	// when
	duplicate, err := svc.Create(context.Background(), validRequest(t))
	// then
	assert.ErrorIs(t, err, cerrors.ErrSKUTaken)
	assert.Nil(t, duplicate)
}

func Test_ProductService_Create_ImagesRoundTrip(t *testing.T) {
	// given
	svc := NewService(store.NewInMemoryStore())
	req := validRequest(t)
	req.PrincipalImage = "https://cdn.example.com/img/main.png"
	req.OtherImages = []string{"http://cdn.example.com/a.png", "http://cdn.example.com/b.png"}
	// when
	created := mustCreate(t, svc, req)
	// then
	assert.Equal(t, req.PrincipalImage, created.PrincipalImage)
	assert.Equal(t, req.OtherImages, created.OtherImages)
}

func Test_ProductService_FindBySKU(t *testing.T) {
	testCases := []struct {
		name        string
		seed        bool
		sku         string
		expectFound bool
		expectError error
	}{
		{
			name:        "Success - product found",
			seed:        true,
			sku:         "FAL-1000000",
			expectFound: true,
		},
		{
			name: "Success - absent product is no content, not an error",
			sku:  "FAL-2000000",
		},
		{
			name:        "Error - invalid sku format",
			sku:         "some_sku",
			expectError: cerrors.ErrSKUFormat,
		},
		{
			name:        "Error - sku number out of range",
			sku:         "FAL-999999",
			expectError: cerrors.ErrSKURange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := NewService(store.NewInMemoryStore())
			if tc.seed {
				mustCreate(t, svc, validRequest(t))
			}
			// when
			found, err := svc.FindBySKU(context.Background(), tc.sku)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			if !tc.expectFound {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Equal(t, tc.sku, found.SKU)
		})
	}
}

func Test_ProductService_Update(t *testing.T) {
	t.Run("Error - missing id", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		// when
		updated, err := svc.Update(context.Background(), validRequest(t))
		// then
		assert.ErrorIs(t, err, cerrors.ErrProductGone)
		assert.Nil(t, updated)
	})

	t.Run("Error - id does not resolve to a row", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		req := validRequest(t)
		req.ID = idPtr(42)
		// when
		updated, err := svc.Update(context.Background(), req)
		// then
		assert.ErrorIs(t, err, cerrors.ErrProductGone)
		assert.Nil(t, updated)
	})

	t.Run("Success - existing row is re-saved unchanged", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		created := mustCreate(t, svc, validRequest(t))
		req := validRequest(t)
		req.ID = idPtr(created.ID)
		req.Name = "another_name"
		// when
		updated, err := svc.Update(context.Background(), req)
		// then
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, created.ID, updated.ID)
		// the stored row wins over the incoming field values
		assert.Equal(t, created.Name, updated.Name)
	})
}

func Test_ProductService_DeleteBySKU(t *testing.T) {
	t.Run("Error - invalid sku format", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		// when
		err := svc.DeleteBySKU(context.Background(), "some_sku")
		// then
		assert.ErrorIs(t, err, cerrors.ErrSKUFormat)
	})

	t.Run("Error - absent sku is already deleted", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		// when
		err := svc.DeleteBySKU(context.Background(), "FAL-1000000")
		// then
		assert.ErrorIs(t, err, cerrors.ErrAlreadyDeleted)
	})

	t.Run("Success - deleted product is no longer retrievable", func(t *testing.T) {
		// given
		svc := NewService(store.NewInMemoryStore())
		created := mustCreate(t, svc, validRequest(t))
		// when
		err := svc.DeleteBySKU(context.Background(), created.SKU)
		// then
		require.NoError(t, err)
		found, err := svc.FindBySKU(context.Background(), created.SKU)
		require.NoError(t, err)
		assert.Nil(t, found)
		// repeating the delete reports the row as already gone
		assert.ErrorIs(t, svc.DeleteBySKU(context.Background(), created.SKU), cerrors.ErrAlreadyDeleted)
	})
}

func Test_ProductService_StoreFailuresPropagate(t *testing.T) {
	// given
	errStore := errors.New("store unavailable")
	svc := NewService(&failingStore{error: errStore})
	req := validRequest(t)
	req.ID = idPtr(1)

	// when/then
	_, err := svc.Create(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, errStore)

	_, err = svc.FindBySKU(context.Background(), "FAL-1000000")
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, errStore)

	assert.ErrorIs(t, svc.DeleteBySKU(context.Background(), "FAL-1000000"), errStore)
}
