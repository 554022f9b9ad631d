package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	bearerPrefix   = "Bearer "
	maxRequestBody = 1 << 20
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.NewSuccessResponse("ok", nil), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most 1 MiB of the request body into v. Unknown
// fields and trailing data are rejected with [ErrInvalidRequestBody].
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidRequestBody)
	}

	return nil
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>". The scheme is case-sensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
