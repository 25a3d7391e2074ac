package service

import (
	"regexp"
	"strconv"
	"strings"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
)

// Bounds for the numeric segment of a SKU. The pattern constrains shape only,
// so magnitude is checked separately.
const (
	skuNumberMin = 1_000_000
	skuNumberMax = 99_999_999
)

var skuPattern = regexp.MustCompile(`^[FAL]+-\d+$`)

// SKU is a validated stock keeping unit: one or more letters over {F, A, L},
// a dash, and a numeric segment within [skuNumberMin, skuNumberMax].
type SKU struct {
	Value  string
	Number int64
}

// ParseSKU validates the shape and numeric range of a sku string. It is the
// single validation point for every operation that takes a sku.
// Returns ErrSKUFormat or ErrSKURange on violation.
func ParseSKU(sku string) (SKU, error) {
	if !skuPattern.MatchString(sku) {
		return SKU{}, cerrors.ErrSKUFormat
	}
	segment := sku[strings.IndexByte(sku, '-')+1:]
	n, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		// Shape already matched, so a parse failure means the number
		// overflows int64 and is far outside the accepted range.
		return SKU{}, cerrors.ErrSKURange
	}
	if n < skuNumberMin || n > skuNumberMax {
		return SKU{}, cerrors.ErrSKURange
	}
	return SKU{Value: sku, Number: n}, nil
}
