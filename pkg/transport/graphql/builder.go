package graphql

import (
	"github.com/machinebox/graphql"
)

// Builder constructs GraphQL requests.
type Builder struct {
	Query     string
	Variables map[string]interface{}
	Headers   map[string]string
}

// NewBuilder sets up a GraphQL Builder for one document.
func NewBuilder(query string, opts ...BuilderOption) *Builder {
	b := &Builder{
		Query:     query,
		Variables: make(map[string]interface{}),
		Headers:   make(map[string]string),
	}
	b.ApplyOptions(opts...)
	return b
}

// Build creates the request the GraphQL client posts as
// {"query": ..., "variables": {...}}.
func (b *Builder) Build() *graphql.Request {
	req := graphql.NewRequest(b.Query)
	for k, v := range b.Variables {
		req.Var(k, v)
	}
	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}
	return req
}
