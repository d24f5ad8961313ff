package routes

import (
	"net/http"

	"github.com/shubham-automation/github-action-demo/internal/customer"
	"github.com/shubham-automation/github-action-demo/internal/deps"

	pkghttpx "github.com/shubham-automation/github-action-demo/pkg/httpx"
	pkgrequestctx "github.com/shubham-automation/github-action-demo/pkg/requestctx"
)

// Root returns the handler for GET /.
func Root(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c customer.Context
		if id, ok := pkgrequestctx.Customer(r.Context()); ok && id != "" {
			c = customer.Context{ID: id}
		} else {
			c = customer.Resolve(r.URL.Query())
		}
		pkghttpx.WriteText(w, http.StatusOK, customer.Select(c, d.Features))
	}
}
