package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"product-catalog/internal/products"
)

// Field holds one raw JSON member of a product request and remembers whether
// the client sent it. A JSON null counts as not sent.
type Field struct {
	raw json.RawMessage
	set bool
}

func (f *Field) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	f.raw = append(f.raw[:0], b...)
	f.set = true
	return nil
}

func (f Field) Present() bool {
	return f.set
}

// Input is the product payload exactly as received. Price and stock may be
// text or numbers, thumbnail a single path or a list, status a boolean or
// its JSON text.
type Input struct {
	Title       Field `json:"title" swaggertype:"string" example:"Mouse"`
	Description Field `json:"description" swaggertype:"string" example:"Wireless mouse"`
	Price       Field `json:"price" swaggertype:"string" example:"25"`
	Thumbnail   Field `json:"thumbnail" swaggertype:"array,string" example:"img.png"`
	Code        Field `json:"code" swaggertype:"string" example:"MOUSE01"`
	Stock       Field `json:"stock" swaggertype:"string" example:"10"`
	Status      Field `json:"status" swaggertype:"string" example:"true"`
	Category    Field `json:"category" swaggertype:"string" example:"peripherals"`
}

// Value is a coerced field. Set reports whether it was sent, OK whether it
// could be coerced to T.
type Value[T any] struct {
	V   T
	Set bool
	OK  bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{V: v, Set: true, OK: true}
}

// Candidate is a coerced, not yet validated product. Price and stock keep
// their canonical decimal text so the integer rules apply to what was sent.
type Candidate struct {
	Title       Value[string]
	Description Value[string]
	Price       Value[string]
	Thumbnails  Value[[]string]
	Code        Value[string]
	Stock       Value[string]
	Status      Value[bool]
	Category    Value[string]
}

// Coerce converts transport representations into typed values: numeric text
// is normalised, a single thumbnail is wrapped into a list and a JSON-encoded
// boolean status is decoded.
func Coerce(in Input) Candidate {
	return Candidate{
		Title:       coerceText(in.Title),
		Description: coerceText(in.Description),
		Price:       coerceNumber(in.Price),
		Thumbnails:  coerceThumbnails(in.Thumbnail),
		Code:        coerceText(in.Code),
		Stock:       coerceNumber(in.Stock),
		Status:      coerceStatus(in.Status),
		Category:    coerceText(in.Category),
	}
}

// FromProduct returns the candidate that describes an already stored product.
func FromProduct(p products.Product) Candidate {
	thumbs := p.Thumbnails
	if thumbs == nil {
		thumbs = []string{}
	}
	return Candidate{
		Title:       Of(p.Title),
		Description: Of(p.Description),
		Price:       Of(strconv.FormatInt(p.Price, 10)),
		Thumbnails:  Of(thumbs),
		Code:        Of(p.Code),
		Stock:       Of(strconv.FormatInt(p.Stock, 10)),
		Status:      Of(p.Status),
		Category:    Of(p.Category),
	}
}

// Merge overlays patch on base for a partial update. Text fields that are
// absent or blank keep the base value. Price, stock, thumbnail and status
// replace the base whenever they were sent, valid or not.
func Merge(base, patch Candidate) Candidate {
	out := base
	out.Title = mergeText(base.Title, patch.Title)
	out.Description = mergeText(base.Description, patch.Description)
	out.Code = mergeText(base.Code, patch.Code)
	out.Category = mergeText(base.Category, patch.Category)
	if patch.Price.Set {
		out.Price = patch.Price
	}
	if patch.Stock.Set {
		out.Stock = patch.Stock
	}
	if patch.Thumbnails.Set {
		out.Thumbnails = patch.Thumbnails
	}
	if patch.Status.Set {
		out.Status = patch.Status
	}
	return out
}

func mergeText(base, patch Value[string]) Value[string] {
	if !patch.Set || (patch.OK && patch.V == "") {
		return base
	}
	return patch
}

func coerceText(f Field) Value[string] {
	if !f.set {
		return Value[string]{}
	}
	var s string
	if err := json.Unmarshal(f.raw, &s); err != nil {
		return Value[string]{Set: true}
	}
	return Of(s)
}

func coerceNumber(f Field) Value[string] {
	if !f.set {
		return Value[string]{}
	}
	var s string
	if err := json.Unmarshal(f.raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(f.raw, &n); err != nil {
			return Value[string]{Set: true}
		}
		s = n.String()
	}
	return Of(normalizeNumber(strings.TrimSpace(s)))
}

// normalizeNumber rewrites numeric text in canonical decimal form. Whole
// numbers keep their exact digits; 25.0 and 1e1 style input goes through
// float parsing. Anything else, including digit separators, is returned
// unchanged for the rules to reject.
func normalizeNumber(s string) string {
	if s == "" || strings.ContainsRune(s, '_') {
		return s
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return s
	}
	return canonical(n)
}

func canonical(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func coerceThumbnails(f Field) Value[[]string] {
	if !f.set {
		return Value[[]string]{}
	}
	var single string
	if err := json.Unmarshal(f.raw, &single); err == nil {
		if strings.ContainsRune(single, 0) {
			return Value[[]string]{Set: true}
		}
		return Of([]string{single})
	}
	var list []json.RawMessage
	if err := json.Unmarshal(f.raw, &list); err != nil {
		return Value[[]string]{Set: true}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		var s string
		if err := json.Unmarshal(item, &s); err != nil || strings.ContainsRune(s, 0) {
			return Value[[]string]{Set: true}
		}
		out = append(out, s)
	}
	return Of(out)
}

func coerceStatus(f Field) Value[bool] {
	if !f.set {
		return Value[bool]{}
	}
	var b bool
	if err := json.Unmarshal(f.raw, &b); err == nil {
		return Of(b)
	}
	var s string
	if err := json.Unmarshal(f.raw, &s); err != nil {
		return Value[bool]{Set: true}
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &b); err != nil {
		return Value[bool]{Set: true}
	}
	return Of(b)
}
