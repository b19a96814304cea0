package http

import "net/http"

// getServerVersion reports the server's version string, the same value
// the VERSION entry carries, as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
