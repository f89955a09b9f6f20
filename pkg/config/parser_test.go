package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saturnines/product-search/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoader_ValidYAML(t *testing.T) {
	yamlContent := `
store:
  url: https://demo-shop.myshopify.com/
  api_version: "2024-01"
auth:
  token: shpat_test
`
	loader := NewDefaultLoader(envFrom(nil))

	cfg, err := loader.Parse([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "https://demo-shop.myshopify.com", cfg.Store.URL)
	assert.Equal(t, "2024-01", cfg.Store.APIVersion)
	assert.Equal(t, AuthTypeAPIKey, cfg.Auth.Type)
	assert.Equal(t, DefaultAccessTokenHeader, cfg.Auth.Header)
	assert.Equal(t, "shpat_test", cfg.Auth.Token)
}

func TestLoader_ExpandsVariables(t *testing.T) {
	yamlContent := `
store:
  url: ${STORE_URL}
  api_version: ${API_VERSION}
auth:
  type: bearer
  token: ${ADMIN_TOKEN}
`
	env := envFrom(map[string]string{
		EnvStoreURL:   "https://expanded.myshopify.com",
		EnvAPIVersion: "2023-10",
		EnvAdminToken: "from-env",
	})

	cfg, err := NewDefaultLoader(env).Parse([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "https://expanded.myshopify.com", cfg.Store.URL)
	assert.Equal(t, "2023-10", cfg.Store.APIVersion)
	assert.Equal(t, AuthTypeBearer, cfg.Auth.Type)
	assert.Empty(t, cfg.Auth.Header)
	assert.Equal(t, "from-env", cfg.Auth.Token)
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	content := "store:\n  url: http://localhost:8080\n  api_version: unstable\nauth:\n  token: abc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewDefaultLoader(envFrom(nil)).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Store.URL)

	_, err = NewDefaultLoader(envFrom(nil)).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestLoader_ExampleConfigs(t *testing.T) {
	env := envFrom(map[string]string{
		EnvStoreURL:     "https://demo-shop.myshopify.com",
		EnvAdminToken:   "shpat_example",
		"GATEWAY_URL":   "https://gateway.example.com/shops/demo",
		"GATEWAY_TOKEN": "gw_example",
	})

	tests := []struct {
		file      string
		wantURL   string
		wantType  AuthType
		wantToken string
	}{
		{"store.example.yaml", "https://demo-shop.myshopify.com", AuthTypeAPIKey, "shpat_example"},
		{"gateway.example.yaml", "https://gateway.example.com/shops/demo", AuthTypeBearer, "gw_example"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := NewDefaultLoader(env).Load(filepath.Join("..", "..", "configs", tt.file))
			require.NoError(t, err)

			assert.Equal(t, tt.wantURL, cfg.Store.URL)
			assert.Equal(t, "2024-01", cfg.Store.APIVersion)
			assert.Equal(t, tt.wantType, cfg.Auth.Type)
			assert.Equal(t, tt.wantToken, cfg.Auth.Token)
		})
	}
}

func TestLoader_FromEnv(t *testing.T) {
	env := envFrom(map[string]string{
		EnvStoreURL:   "https://demo-shop.myshopify.com",
		EnvAPIVersion: "2024-01",
		EnvAdminToken: "shpat_env",
	})

	cfg, err := NewDefaultLoader(env).FromEnv(env)
	require.NoError(t, err)

	assert.Equal(t, "https://demo-shop.myshopify.com", cfg.Store.URL)
	assert.Equal(t, AuthTypeAPIKey, cfg.Auth.Type)
	assert.Equal(t, "shpat_env", cfg.Auth.Token)
}

func TestLoader_FromEnvMissingValues(t *testing.T) {
	env := envFrom(nil)

	_, err := NewDefaultLoader(env).FromEnv(env)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
	assert.Contains(t, err.Error(), "store.url")
	assert.Contains(t, err.Error(), "store.api_version")
	assert.Contains(t, err.Error(), "auth.token")
}

func TestLoader_InvalidYAML(t *testing.T) {
	_, err := NewDefaultLoader(envFrom(nil)).Parse([]byte("store: [unterminated"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestRequiredFieldValidator_Scheme(t *testing.T) {
	cfg := &Config{Store: Store{URL: "demo-shop.myshopify.com", APIVersion: "2024-01"}}

	errs := (&RequiredFieldValidator{}).Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "store.url", errs[0].Field)
}

func TestAuthValidator(t *testing.T) {
	tests := []struct {
		name   string
		auth   *Auth
		fields []string
	}{
		{"missing", nil, []string{"auth"}},
		{"unknown type", &Auth{Type: "oauth2", Token: "x"}, []string{"auth.type"}},
		{"api key without header", &Auth{Type: AuthTypeAPIKey, Token: "x"}, []string{"auth.header"}},
		{"bearer without token", &Auth{Type: AuthTypeBearer}, []string{"auth.token"}},
		{"valid", &Auth{Type: AuthTypeAPIKey, Header: "X-Token", Token: "x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := (&AuthValidator{}).Validate(&Config{Auth: tt.auth})
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}
