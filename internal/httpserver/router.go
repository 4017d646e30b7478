package httpserver

import (
	"gpbooking/internal/httpserver/handlers"
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter configures the route table.
// Unknown paths, non-canonical spellings of known paths and known paths hit
// with the wrong method all answer 404.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	// Paths are matched as sent: "//" or "/x/.." is not "/" and must not redirect to it.
	r := mux.NewRouter().SkipClean(true)

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)

	r.NotFoundHandler = http.NotFoundHandler()
	r.MethodNotAllowedHandler = http.NotFoundHandler()

	return r
}
