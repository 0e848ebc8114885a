package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(buildInfo.Version))
}
