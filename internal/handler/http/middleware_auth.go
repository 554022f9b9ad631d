package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

// authorize is the access control middleware. It runs once per request:
//
//  1. The route requirement is resolved from the access policy.
//  2. Public routes proceed without looking at credentials.
//  3. Otherwise the bearer token is taken from the "Authorization" header.
//     A missing or malformed header counts as unauthenticated.
//  4. The token is validated and its subject re-resolved in the identity
//     store by [service.AuthService.Authenticate].
//  5. The resulting principal is checked against the requirement and, when
//     allowed, stored in the request context under [utils.PrincipalCtxKey].
//
// Rejections are terminal: 401 UNAUTHORIZED for an unauthenticated request,
// 403 FORBIDDEN for an insufficient role and 503 UPSTREAM_UNAVAILABLE when
// the identity store fails. A tampered, expired or vanished-account token
// is indistinguishable from a missing one.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		requirement := h.policy.Resolve(r.Method, r.URL.Path)
		if requirement.IsPublic() {
			h.recordDecision(metrics.DecisionPublic)
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			token = ""
		}

		principal, err := h.services.AuthService.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				h.recordDecision(metrics.DecisionUnauthorized)
				log.Debug().Str("requirement", requirement.String()).Msg("unauthenticated request rejected")
			} else {
				h.recordDecision(metrics.DecisionUpstreamError)
			}
			writeError(w, r, err)
			return
		}

		if !requirement.Allows(principal) {
			h.recordDecision(metrics.DecisionForbidden)
			log.Warn().
				Str("username", principal.Username).
				Str("role", principal.Role.String()).
				Str("requirement", requirement.String()).
				Msg("insufficient role")
			writeError(w, r, ErrForbidden)
			return
		}

		h.recordDecision(metrics.DecisionAllowed)
		next.ServeHTTP(w, r.WithContext(utils.ContextWithPrincipal(r.Context(), principal)))
	})
}

func (h *Handler) recordDecision(outcome string) {
	if h.metrics != nil {
		h.metrics.AuthDecision(outcome)
	}
}
