package service

import (
	"strings"

	"github.com/abgdnv/gocatalog/internal/store/db"
	"github.com/jackc/pgx/v5/pgtype"
)

// imageSeparator joins otherImages into the single persisted column. URLs
// containing ';' do not round-trip, an accepted constraint of the schema.
const imageSeparator = ";"

// toCreateParams builds the entity insert parameters from a validated request.
func toCreateParams(req ProductRequest) db.CreateProductParams {
	return db.CreateProductParams{
		Sku:            req.SKU,
		Name:           req.Name,
		Brand:          req.Brand,
		Size:           req.Size,
		Price:          *req.Price,
		PrincipalImage: toText(req.PrincipalImage),
		OtherImages:    joinImages(req.OtherImages),
	}
}

// toDto converts a db.Product to a ProductDto.
func toDto(product *db.Product) *ProductDto {
	return &ProductDto{
		ID:             product.ID,
		SKU:            product.Sku,
		Name:           product.Name,
		Brand:          product.Brand,
		Size:           product.Size,
		Price:          product.Price,
		PrincipalImage: product.PrincipalImage.String,
		OtherImages:    splitImages(product.OtherImages),
	}
}

func toText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func joinImages(urls []string) pgtype.Text {
	if len(urls) == 0 {
		return pgtype.Text{}
	}
	return pgtype.Text{String: strings.Join(urls, imageSeparator), Valid: true}
}

func splitImages(t pgtype.Text) []string {
	if !t.Valid || t.String == "" {
		return nil
	}
	return strings.Split(t.String, imageSeparator)
}
