// Package customer identifies the caller of a request and picks the
// greeting they receive.
package customer

import (
	"net/url"

	"github.com/shubham-automation/github-action-demo/internal/config"
)

// DefaultID is used when the request names no customer.
const DefaultID = "A"

// QueryParam is the query-string key carrying the customer ID.
const QueryParam = "customer"

const (
	GreetingDefault   = "hello world"
	GreetingCustomerB = "You are valuable customer B"
)

// Context is the per-request customer data. ID is never empty.
type Context struct {
	ID string
}

// Resolve derives the customer from the query string. Any non-empty value is
// accepted verbatim.
func Resolve(q url.Values) Context {
	if id := q.Get(QueryParam); id != "" {
		return Context{ID: id}
	}
	return Context{ID: DefaultID}
}

// Select returns the response body for c.
func Select(c Context, f config.Features) string {
	if c.ID == "B" && f.CustomerB {
		return GreetingCustomerB
	}
	return GreetingDefault
}
