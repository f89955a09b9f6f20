package config

// Config represents everything one product search needs to reach the store
type Config struct {
	Store Store `yaml:"store"` // Required store location
	Auth  *Auth `yaml:"auth"`  // Required credentials
}

// Store locates the Admin GraphQL API of a shop
type Store struct {
	URL        string `yaml:"url"`         // Required: e.g. https://my-shop.myshopify.com
	APIVersion string `yaml:"api_version"` // Required: e.g. 2024-01
}

// Auth defines auth methods.
type Auth struct {
	Type   AuthType `yaml:"type"`             // Authentication type (default api_key)
	Header string   `yaml:"header,omitempty"` // Header carrying the token for api_key auth
	Token  string   `yaml:"token"`            // Required admin access token
}

// AuthType defines current supported authentication types
type AuthType string

const (
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeBearer AuthType = "bearer"
)

// DefaultAccessTokenHeader is the header Shopify reads admin access tokens from.
const DefaultAccessTokenHeader = "X-Shopify-Access-Token"

// Environment variables read by FromEnv.
const (
	EnvStoreURL   = "STORE_URL"
	EnvAPIVersion = "API_VERSION"
	EnvAdminToken = "ADMIN_TOKEN"
)
