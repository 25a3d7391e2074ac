package service

import "github.com/shopspring/decimal"

// ProductRequest is the externally supplied payload for create and update.
// Field constraints are enforced by Validator before any business logic runs.
type ProductRequest struct {
	ID             *int64           `json:"id"`
	SKU            string           `json:"sku"            validate:"required,sku"`
	Name           string           `json:"name"           validate:"required,min=3,max=50"`
	Brand          string           `json:"brand"          validate:"required,min=3,max=50"`
	Size           string           `json:"size"           validate:"required"`
	Price          *decimal.Decimal `json:"price"          validate:"required,gte=1,lte=99999999"`
	PrincipalImage string           `json:"principalImage" validate:"omitempty,imageurl"`
	OtherImages    []string         `json:"otherImages"    validate:"omitempty,dive,imageurl"`
}

// ProductDto represents the data transfer object for a product.
// OtherImages is the split form of the single `;`-joined persisted column.
type ProductDto struct {
	ID             int64           `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Size           string          `json:"size"`
	Price          decimal.Decimal `json:"price"`
	PrincipalImage string          `json:"principalImage,omitempty"`
	OtherImages    []string        `json:"otherImages,omitempty"`
}
