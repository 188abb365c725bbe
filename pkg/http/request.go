package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "flamesblue/pkg/errors"
)

// DecodeJSON decodes the request body into v. Malformed bodies and
// mistyped fields are reported as validation errors naming the field.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return bodyError("body", "request body is required")
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return bodyError(field, fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		return bodyError("body", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &maxBytesErr):
		return bodyError("body", fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit))
	case errors.Is(err, io.EOF):
		return bodyError("body", "request body is required")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return bodyError("body", "malformed JSON")
	default:
		return bodyError("body", "invalid request body")
	}
}

func bodyError(field, message string) *apperrors.AppError {
	return apperrors.Validation("Validation failed", map[string]any{
		"errors": []map[string]string{{"field": field, "message": message}},
	})
}
