package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	writeSuccess(w, r, http.StatusOK, "server version", buildInfo)
}
