package products

import (
	"errors"
	"fmt"
)

// Code classifies a structured error for the HTTP error boundary.
type Code string

const (
	CodeInvalidTypes  Code = "INVALID_TYPES"
	CodeInvalidParam  Code = "INVALID_PARAM"
	CodeDuplicateCode Code = "DUPLICATE_CODE"
	CodeNotFound      Code = "NOT_FOUND"
)

// Error is the structured error raised by the validation pipeline. Cause is
// either plain text or a FieldErrors report and must marshal to JSON.
type Error struct {
	Name    string `json:"name"`
	Cause   any    `json:"cause"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
	err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

// FieldErrors maps a request field to what was wrong with it.
type FieldErrors map[string]string

func NewInvalidTypes(cause FieldErrors) *Error {
	return &Error{
		Name:    "Invalid product data",
		Cause:   cause,
		Message: "one or more product fields are missing or malformed",
		Code:    CodeInvalidTypes,
	}
}

func NewInvalidParam(param, value string) *Error {
	return &Error{
		Name:    "Invalid parameter",
		Cause:   fmt.Sprintf("invalid value %q for parameter %s", value, param),
		Message: "invalid request parameter",
		Code:    CodeInvalidParam,
	}
}

func NewDuplicateCode(code string) *Error {
	return &Error{
		Name:    "Duplicate product code",
		Cause:   fmt.Sprintf("code %q is already used by another product", code),
		Message: "product code must be unique",
		Code:    CodeDuplicateCode,
		err:     ErrDuplicateCode,
	}
}

func NewNotFound(id int64) *Error {
	return &Error{
		Name:    "Product not found",
		Cause:   fmt.Sprintf("product with id %d does not exist", id),
		Message: "not found",
		Code:    CodeNotFound,
		err:     ErrNotFound,
	}
}

// AsError extracts a structured error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
