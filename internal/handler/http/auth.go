package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", session.Principal.Username).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token.SignedString))
	writeSuccess(w, r, http.StatusCreated, "user registered", session.AuthResponse())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", session.Principal.Username).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token.SignedString))
	writeSuccess(w, r, http.StatusOK, "login successful", session.AuthResponse())
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	writeSuccess(w, r, http.StatusOK, "current user", principal)
}
