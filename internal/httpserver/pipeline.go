// Package httpserver assembles the middleware pipeline, the route table and
// the listener lifecycle of the API.
package httpserver

import (
	"gpbooking/internal/config"
	"gpbooking/internal/httpserver/handlers"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Stage wraps a handler with one step of request processing.
type Stage func(http.Handler) http.Handler

// Pipeline is an ordered list of stages. The first stage sees the request first.
type Pipeline []Stage

// Then wraps h with every stage of the pipeline.
func (p Pipeline) Then(h http.Handler) http.Handler {
	for i := len(p) - 1; i >= 0; i-- {
		h = p[i](h)
	}
	return h
}

// NewPipeline returns the stages every request passes through before routing:
// request logging, panic recovery, CORS and JSON body decoding, in that order.
func NewPipeline(cfg config.ServerConfig, logger *logrus.Logger) Pipeline {
	return Pipeline{
		RequestLog(logger),
		Recover(logger),
		CORS(logger),
		DecodeJSON(cfg.MaxJSONBodyBytes, logger),
	}
}

// NewHandler returns the router wrapped in the request pipeline.
// The pipeline sits outside the router so unmatched requests pass through it too.
func NewHandler(cfg config.ServerConfig, logger *logrus.Logger) http.Handler {
	return NewPipeline(cfg, logger).Then(SetupRouter(handlers.NewHandlers()))
}
