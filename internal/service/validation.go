package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var imageURLPattern = regexp.MustCompile(`^(https?|ftp|file)://[-a-zA-Z0-9+&@#/%?=~_|!:,.;]*[-a-zA-Z0-9+&@#/%=~_|]$`)

// Validator validates product requests and collects every violation as a
// human-readable message. Validation is not fail-fast: a request with several
// invalid fields yields one message per field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator with the catalog's custom rules.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("sku", validateSKUField)
	_ = v.RegisterValidation("imageurl", validateImageURL)
	// Drive decimal fields through the numeric gte/lte tags.
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	return &Validator{validate: v}
}

// Validate checks the request and returns all violation messages,
// or nil if the request is valid.
func (v *Validator) Validate(req ProductRequest) []string {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

// validateSKUField checks the sku shape; the numeric range is a service-level
// concern handled by ParseSKU.
func validateSKUField(fl validator.FieldLevel) bool {
	return skuPattern.MatchString(fl.Field().String())
}

func validateImageURL(fl validator.FieldLevel) bool {
	return imageURLPattern.MatchString(fl.Field().String())
}

func decimalToFloat(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := value.Float64()
		return f
	}
	return nil
}

// messageFor maps a field violation to its client-facing message.
func messageFor(fe validator.FieldError) string {
	field := fe.StructField()
	// Slice elements carry their index, e.g. OtherImages[2].
	if strings.HasPrefix(field, "OtherImages") {
		return "otherImages: element doesn't match"
	}
	switch field {
	case "SKU":
		if fe.Tag() == "sku" {
			return "sku: Invalid sku format"
		}
		return "sku: Must not be null"
	case "Name":
		if fe.Tag() == "required" {
			return "name: Must not be blank"
		}
		return "name: Min 3 characters, max 50"
	case "Brand":
		if fe.Tag() == "required" {
			return "brand: Must not be blank"
		}
		return "brand: Min 3 characters, max 50"
	case "Size":
		return "size: Must not be blank"
	case "Price":
		switch fe.Tag() {
		case "required":
			return "price: Must not be blank"
		case "gte":
			return "price: invalid min value"
		default:
			return "price: reaches max value"
		}
	case "PrincipalImage":
		return "principalImage: element doesn't match"
	}
	return fmt.Sprintf("%s: failed on rule %s", fe.Field(), fe.Tag())
}
