package deps

import "github.com/shubham-automation/github-action-demo/internal/config"

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Features           config.Features
	CORSAllowedOrigins []string
}
