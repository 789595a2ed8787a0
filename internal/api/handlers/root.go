package handlers

import (
	"net/http"
)

// Root reports service identity. The "/" pattern also receives every
// unmatched path, so anything but the bare root is a 404.
func Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":  "ok",
		"message": "Vedic Chart Service is running",
	}
	writeJSON(w, r, http.StatusOK, res)
}
