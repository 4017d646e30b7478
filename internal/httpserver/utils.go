package httpserver

import (
	"net/http"
)

// respondWithError writes a plain text error response prefixed with the status text.
func respondWithError(w http.ResponseWriter, code int, message string) {
	body := http.StatusText(code)
	if message != "" {
		body += ": " + message
	}
	http.Error(w, body, code)
}
