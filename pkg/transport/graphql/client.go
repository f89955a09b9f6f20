package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/machinebox/graphql"
	pkgerrors "github.com/pkg/errors"
	"github.com/saturnines/product-search/pkg/auth"
	"github.com/saturnines/product-search/pkg/errors"
	"go.uber.org/zap"
)

// Client executes GraphQL operations against one endpoint.
type Client struct {
	endpoint    string
	httpClient  *http.Client
	authHandler auth.Handler
	logger      *zap.Logger

	gql *graphql.Client
}

// NewClient wires the HTTP stack: auth first, then status checking, then
// the GraphQL client on top.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	transport := c.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if c.authHandler != nil {
		transport = auth.NewTransport(transport, c.authHandler)
	}

	hc := &http.Client{
		Transport:     &statusTransport{base: transport},
		CheckRedirect: c.httpClient.CheckRedirect,
		Jar:           c.httpClient.Jar,
		Timeout:       c.httpClient.Timeout,
	}

	c.gql = graphql.NewClient(endpoint, graphql.WithHTTPClient(hc))
	c.gql.Log = func(s string) {
		c.logger.Debug(s, zap.String("endpoint", endpoint))
	}
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Execute posts the built request and decodes the "data" member of the
// response into out. Every failure comes back tagged with an error type.
func (c *Client) Execute(ctx context.Context, b *Builder, out interface{}) error {
	if err := c.gql.Run(ctx, b.Build(), out); err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	if errors.Is(err, errors.ErrAuthentication) || errors.Is(err, errors.ErrConfiguration) {
		return err
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return errors.WrapError(err, errors.ErrHTTPResponse, "graphql request")
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return errors.WrapError(err, errors.ErrHTTPRequest, "graphql request")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.WrapError(err, errors.ErrHTTPRequest, "graphql request")
	}

	// The GraphQL client wraps body and decode failures with pkg/errors.
	cause := pkgerrors.Cause(err)
	switch cause.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return errors.WrapError(err, errors.ErrDecode, "graphql response")
	case net.Error:
		return errors.WrapError(err, errors.ErrHTTPRequest, "graphql response")
	}
	if cause == io.EOF || cause == io.ErrUnexpectedEOF {
		return errors.WrapError(err, errors.ErrDecode, "graphql response")
	}

	return errors.WrapError(err, errors.ErrGraphQL, "graphql response")
}
