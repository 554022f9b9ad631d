package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// menu serves the upstream menu document as is. It is consumed by a
// storefront that expects the bare {"data": [...]} shape, so it is not
// wrapped in the response envelope.
func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.services.MenuService.GetMenu(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(menu); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing menu")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrUnhealthy, err))
		return
	}

	writeSuccess(w, r, http.StatusOK, "ok", nil)
}
