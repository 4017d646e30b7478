package httpserver

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// corsOptions allow any origin without credentials.
var corsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodPost,
		http.MethodDelete,
	},
	AllowedHeaders:       []string{"*"},
	ExposedHeaders:       []string{RequestIDHeader},
	OptionsSuccessStatus: http.StatusNoContent,
}

// CORS answers preflight requests and marks every response as readable from
// any origin.
func CORS(logger *logrus.Logger) Stage {
	opts := corsOptions
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		opts.Logger = logger.WithField("component", "cors")
	}
	c := cors.New(opts)

	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// rs/cors only sets the header when the request carries an Origin.
			w.Header().Set("Access-Control-Allow-Origin", "*")
			h.ServeHTTP(w, r)
		})
	}
}
