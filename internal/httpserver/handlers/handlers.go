package handlers

import (
	"io"
	"net/http"
)

// Banner is the body returned by the index route.
const Banner = "GP Booking Api is running!"

// Handlers holds the dependencies shared by the HTTP handlers.
type Handlers struct {
	Banner string
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers() *Handlers {
	return &Handlers{Banner: Banner}
}

// Index is a public endpoint confirming the API is up.
// Query parameters, headers and body are ignored.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	// Write errors mean the client is gone.
	_, _ = io.WriteString(w, h.Banner)
}
