package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"product-catalog/internal/products"
)

type check struct {
	field string
	ok    func(Candidate) bool
	msg   string
}

// checks run in this order. Validate stops at the first failure, Report keeps
// the first failure per field.
var checks = []check{
	{"title", func(c Candidate) bool { return hasText(c.Title) }, "is required and must be non-empty text"},
	{"description", func(c Candidate) bool { return hasText(c.Description) }, "is required and must be non-empty text"},
	{"price", func(c Candidate) bool { return hasNumber(c.Price) }, "is required"},
	{"thumbnail", func(c Candidate) bool { return c.Thumbnails.Set }, "is required"},
	{"code", func(c Candidate) bool { return hasText(c.Code) }, "is required and must be non-empty text"},
	{"stock", func(c Candidate) bool { return hasNumber(c.Stock) }, "is required"},
	{"status", func(c Candidate) bool { return c.Status.Set }, "is required"},
	{"category", func(c Candidate) bool { return hasText(c.Category) }, "is required and must be non-empty text"},

	{"title", func(c Candidate) bool { return noNUL(c.Title) }, "must not contain NUL characters"},
	{"description", func(c Candidate) bool { return noNUL(c.Description) }, "must not contain NUL characters"},
	{"category", func(c Candidate) bool { return noNUL(c.Category) }, "must not contain NUL characters"},
	{"price", func(c Candidate) bool { return isNumber(c.Price) }, "must be a number"},
	{"stock", func(c Candidate) bool { return isNumber(c.Stock) }, "must be a number"},
	{"price", func(c Candidate) bool { return IsPositiveInteger(c.Price.V) }, "must be a positive integer"},
	{"stock", func(c Candidate) bool { return IsNonNegativeInteger(c.Stock.V) }, "must be zero or a positive integer"},
	{"thumbnail", func(c Candidate) bool { return c.Thumbnails.OK }, "must be a list of image paths"},
	{"code", func(c Candidate) bool { return IsAlphanumericSpace(c.Code.V) }, "may only contain letters, digits and spaces"},
	{"status", func(c Candidate) bool { return c.Status.OK }, "must be a boolean"},
}

func hasText(v Value[string]) bool {
	return v.Set && v.OK && v.V != ""
}

func hasNumber(v Value[string]) bool {
	return v.Set && (!v.OK || v.V != "")
}

// noNUL guards the text columns, which cannot store a NUL byte.
func noNUL(v Value[string]) bool {
	return !strings.ContainsRune(v.V, 0)
}

func isNumber(v Value[string]) bool {
	if !v.OK || strings.ContainsRune(v.V, '_') {
		return false
	}
	n, err := strconv.ParseFloat(v.V, 64)
	return err == nil && !math.IsNaN(n)
}

// Validate reports whether c is an admissible product.
func Validate(c Candidate) bool {
	for _, ch := range checks {
		if !ch.ok(c) {
			return false
		}
	}
	return true
}

// Report describes every field of c that fails validation. It is empty
// exactly when Validate(c) is true.
func Report(c Candidate) products.FieldErrors {
	report := products.FieldErrors{}
	for _, ch := range checks {
		if _, seen := report[ch.field]; seen {
			continue
		}
		if !ch.ok(c) {
			report[ch.field] = fmt.Sprintf("%s %s", ch.field, ch.msg)
		}
	}
	return report
}

// Product converts a candidate that passed Validate into a product without
// an id.
func Product(c Candidate) (products.Product, error) {
	if !Validate(c) {
		return products.Product{}, products.NewInvalidTypes(Report(c))
	}
	price, err := strconv.ParseInt(c.Price.V, 10, 64)
	if err != nil {
		return products.Product{}, fmt.Errorf("parse price: %w", err)
	}
	stock, err := strconv.ParseInt(c.Stock.V, 10, 64)
	if err != nil {
		return products.Product{}, fmt.Errorf("parse stock: %w", err)
	}
	thumbs := make([]string, len(c.Thumbnails.V))
	copy(thumbs, c.Thumbnails.V)
	return products.Product{
		Title:       c.Title.V,
		Description: c.Description.V,
		Price:       price,
		Stock:       stock,
		Thumbnails:  thumbs,
		Code:        c.Code.V,
		Status:      c.Status.V,
		Category:    c.Category.V,
	}, nil
}
