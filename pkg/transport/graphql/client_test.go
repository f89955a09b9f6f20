package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saturnines/product-search/pkg/auth"
	"github.com/saturnines/product-search/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usersResponse struct {
	Users []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"users"`
}

func TestClient_Execute(t *testing.T) {
	var gotBody map[string]interface{}
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"users":[{"id":"1","name":"Alice"},{"id":"2","name":"Bob"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAuthHandler(auth.NewAPIKeyAuth("X-Shopify-Access-Token", "shpat_1")))
	builder := NewBuilder(`query($name: String!) { users(name: $name) { id name } }`,
		WithVariable("name", "ali"),
		WithHeader("X-Request-ID", "run-1"),
	)

	var out usersResponse
	require.NoError(t, client.Execute(context.Background(), builder, &out))

	require.Len(t, out.Users, 2)
	assert.Equal(t, "Alice", out.Users[0].Name)

	assert.Equal(t, builder.Query, gotBody["query"])
	assert.Equal(t, map[string]interface{}{"name": "ali"}, gotBody["variables"])
	assert.True(t, strings.HasPrefix(gotHeaders.Get("Content-Type"), "application/json"))
	assert.Equal(t, "shpat_1", gotHeaders.Get("X-Shopify-Access-Token"))
	assert.Equal(t, "run-1", gotHeaders.Get("X-Request-ID"))
	assert.Equal(t, server.URL, client.Endpoint())
}

func TestClient_ExecuteFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errType error
	}{
		{"server error", http.StatusInternalServerError, `{"errors":"boom"}`, errors.ErrHTTPResponse},
		{"unauthorized", http.StatusUnauthorized, `{"errors":"[API] Invalid API key"}`, errors.ErrHTTPResponse},
		{"malformed body", http.StatusOK, `{"data":`, errors.ErrDecode},
		{"not json", http.StatusOK, `<html>hello</html>`, errors.ErrDecode},
		{"empty body", http.StatusOK, ``, errors.ErrDecode},
		{"graphql errors", http.StatusOK, `{"errors":[{"message":"Field 'nope' doesn't exist"}]}`, errors.ErrGraphQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var out usersResponse
			err := NewClient(server.URL).Execute(context.Background(), NewBuilder(`{ users { id } }`), &out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.errType), "got %v", err)
		})
	}
}

func TestClient_HTTPErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found\n"))
	}))
	defer server.Close()

	var out usersResponse
	err := NewClient(server.URL).Execute(context.Background(), NewBuilder(`{ users { id } }`), &out)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "Not Found", httpErr.Body)
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	var out usersResponse
	err := NewClient(endpoint).Execute(context.Background(), NewBuilder(`{ users { id } }`), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrHTTPRequest), "got %v", err)
}

func TestClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out usersResponse
	err := NewClient(server.URL).Execute(ctx, NewBuilder(`{ users { id } }`), &out)
	assert.True(t, errors.Is(err, errors.ErrHTTPRequest), "got %v", err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_AuthFailureKeepsType(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	var out usersResponse
	err := NewClient(server.URL, WithAuthHandler(auth.NewBearerAuth(""))).
		Execute(context.Background(), NewBuilder(`{ users { id } }`), &out)
	assert.True(t, errors.Is(err, errors.ErrAuthentication), "got %v", err)
}

func TestBuilder_Options(t *testing.T) {
	b := NewBuilder("{ x }",
		WithVariable("a", 1),
		WithVariable("b", "two"),
		WithVariable("a", 2),
		WithHeader("X-One", "1"),
	)

	assert.Equal(t, map[string]interface{}{"a": 2, "b": "two"}, b.Variables)
	assert.Equal(t, "1", b.Build().Header.Get("X-One"))
}
