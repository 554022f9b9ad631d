package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

// pathID parses a positive int64 path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return id, nil
}

// queryInt64 parses an optional int64 query parameter; nil means absent.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return &v, nil
}

// orderStatus accepts any letter case. Unknown values are passed through
// unchanged so the service layer reports them as invalid.
func orderStatus(raw string) models.OrderStatus {
	if status, ok := models.ParseOrderStatus(raw); ok {
		return status
	}
	return models.OrderStatus(raw)
}

func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, ErrNoPrincipal
	}
	return principal, nil
}
