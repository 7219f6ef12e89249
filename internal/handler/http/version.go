package http

import (
	"net/http"
)

// getServerVersion reports the running server version as plain text. Public
// route; the client shows it next to its own build version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
