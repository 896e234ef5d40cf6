package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/itemcatalog/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FieldError is one failed field: its JSON path (e.g. "statistics.likes")
// and a human-readable message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors flattens validator.ValidationErrors in struct declaration order.
// Returns nil for any other error.
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: fieldPath(e), Message: formatFieldError(e)})
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field path → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	for _, fe := range FieldErrors(err) {
		errs[fe.Field] = fe.Message
	}
	return errs
}

// fieldPath drops the root struct name from the namespace so nested fields
// read as "statistics.likes".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an error response if either step fails:
//   - undecodable body (including wrong JSON types) → 400 {"error":"Invalid JSON"}
//   - failed validation → 400 {"error":"<field>: <message>","fields":{...}}
//     where error names the first failing field in declaration order.
//
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		fields := FieldErrors(err)
		msg := "Validation failed"
		if len(fields) > 0 {
			msg = fields[0].Field + ": " + fields[0].Message
		}
		httpx.JSONFieldErrors(w, http.StatusBadRequest, msg, FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
