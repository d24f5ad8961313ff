package server

import (
	"net/http"

	"github.com/shubham-automation/github-action-demo/internal/deps"
	"github.com/shubham-automation/github-action-demo/internal/routes"
)

type Server struct {
	deps.ServerDeps
}

func New(d deps.ServerDeps) *Server {
	return &Server{ServerDeps: d}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps

	mux.HandleFunc("GET /{$}", routes.Root(sd))

	h := withCORS(sd.CORSAllowedOrigins)(mux)
	h = withSecurityHeaders(h)
	h = withRecover(h)
	h = withLogging(h)
	h = withCustomer(h)
	return withCorrelationID(h)
}
