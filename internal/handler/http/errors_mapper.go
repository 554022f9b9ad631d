package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/app"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeUsernameTaken       = "USERNAME_TAKEN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeRateLimited         = "RATE_LIMITED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// errorResponse describes how an error is presented to the client. An empty
// message means the error text itself is safe to show.
type errorResponse struct {
	target  error
	status  int
	code    string
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, code: CodeValidationFailed},
	{target: utils.ErrInvalidRequestBody, status: http.StatusBadRequest, code: CodeValidationFailed, message: app.MsgInvalidRequestBody},
	{target: ErrInvalidParameter, status: http.StatusBadRequest, code: CodeValidationFailed},

	{target: service.ErrUsernameTaken, status: http.StatusConflict, code: CodeUsernameTaken, message: app.MsgUsernameTaken},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, code: CodeInvalidCredentials, message: app.MsgInvalidCredentials},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, code: CodeUnauthorized, message: app.MsgAuthenticationRequired},
	{target: ErrNoPrincipal, status: http.StatusUnauthorized, code: CodeUnauthorized, message: app.MsgAuthenticationRequired},
	{target: ErrForbidden, status: http.StatusForbidden, code: CodeForbidden, message: app.MsgAccessDenied},

	{target: service.ErrProductNotFound, status: http.StatusNotFound, code: CodeNotFound, message: app.MsgProductNotFound},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, code: CodeNotFound, message: app.MsgOrderNotFound},
	{target: ErrRouteNotFound, status: http.StatusNotFound, code: CodeNotFound, message: app.MsgResourceNotFound},

	{target: ErrTooManyRequests, status: http.StatusTooManyRequests, code: CodeRateLimited, message: app.MsgTooManyRequests},

	{target: service.ErrUpstreamUnavailable, status: http.StatusServiceUnavailable, code: CodeUpstreamUnavailable, message: app.MsgServiceUnavailable},
	{target: service.ErrMenuUnavailable, status: http.StatusServiceUnavailable, code: CodeServiceUnavailable, message: app.MsgMenuUnavailable},
	{target: ErrUnhealthy, status: http.StatusServiceUnavailable, code: CodeServiceUnavailable, message: app.MsgUnhealthy},
}

var internalErrorResponse = errorResponse{
	status:  http.StatusInternalServerError,
	code:    CodeInternalError,
	message: app.MsgInternalServerError,
}

func responseFromError(err error) errorResponse {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.message == "" {
				resp.message = err.Error()
			}
			return resp
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the matching error envelope. Server-side
// failures are logged with the full error; the client only sees the
// generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.NewErrorResponse(resp.code, resp.message), resp.status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.NewSuccessResponse(message, data), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
