package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/saturnines/product-search/pkg/errors"
	"gopkg.in/yaml.v3"
)

type ValidationError struct {
	Field   string
	Message string
}

type Validator interface {
	Validate(config *Config) []ValidationError
}

// Returns the string representation of validation error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultValueSetter Handles the interface for setting default values
type DefaultValueSetter interface {
	SetDefaults(config *Config)
}

// VariableExpander defines the interface for expanding variables
type VariableExpander interface {
	Expand(data []byte) []byte
}

// EnvExpander implements VariableExpander using a getenv function.
// A nil Getenv falls back to os.Getenv.
type EnvExpander struct {
	Getenv func(string) string
}

// Expand expands environment variables with the given data
func (e *EnvExpander) Expand(data []byte) []byte {
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return []byte(os.Expand(string(data), getenv))
}

// Loader builds a Config from YAML or from the environment
type Loader struct {
	expander      VariableExpander
	validators    []Validator
	defaultSetter DefaultValueSetter
}

// NewLoader creates a new Loader with the given components
func NewLoader(
	expander VariableExpander,
	defaultSetter DefaultValueSetter,
	validators ...Validator,
) *Loader {
	return &Loader{
		expander:      expander,
		validators:    validators,
		defaultSetter: defaultSetter,
	}
}

// NewDefaultLoader wires the defaults and every validator.
func NewDefaultLoader(getenv func(string) string) *Loader {
	return NewLoader(
		&EnvExpander{Getenv: getenv},
		&Defaults{},
		&RequiredFieldValidator{},
		&AuthValidator{},
	)
}

// Load a config from YAML file
func (l *Loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "read config file")
	}

	return l.Parse(data)
}

// Parse parses a yaml config
func (l *Loader) Parse(data []byte) (*Config, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "parse YAML")
	}

	return l.finish(&cfg)
}

// FromEnv builds a config from STORE_URL, API_VERSION and ADMIN_TOKEN.
func (l *Loader) FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Store: Store{
			URL:        getenv(EnvStoreURL),
			APIVersion: getenv(EnvAPIVersion),
		},
		Auth: &Auth{
			Token: getenv(EnvAdminToken),
		},
	}
	return l.finish(cfg)
}

func (l *Loader) finish(cfg *Config) (*Config, error) {
	if l.defaultSetter != nil {
		l.defaultSetter.SetDefaults(cfg)
	}

	var allErrors []ValidationError
	for _, validator := range l.validators {
		allErrors = append(allErrors, validator.Validate(cfg)...)
	}

	if len(allErrors) > 0 {
		msgs := make([]string, 0, len(allErrors))
		for _, e := range allErrors {
			msgs = append(msgs, e.Error())
		}
		return nil, errors.WrapError(
			fmt.Errorf("%s", strings.Join(msgs, "; ")),
			errors.ErrConfiguration,
			"validation errors",
		)
	}

	return cfg, nil
}

// Defaults implements DefaultValueSetter for Config
type Defaults struct{}

// SetDefaults sets default values for Config
func (d *Defaults) SetDefaults(cfg *Config) {
	cfg.Store.URL = strings.TrimRight(strings.TrimSpace(cfg.Store.URL), "/")
	cfg.Store.APIVersion = strings.TrimSpace(cfg.Store.APIVersion)

	if cfg.Auth == nil {
		cfg.Auth = &Auth{}
	}
	if cfg.Auth.Type == "" {
		cfg.Auth.Type = AuthTypeAPIKey
	}
	if cfg.Auth.Type == AuthTypeAPIKey && cfg.Auth.Header == "" {
		cfg.Auth.Header = DefaultAccessTokenHeader
	}
}

// RequiredFieldValidator validates required fields
type RequiredFieldValidator struct{}

// Validate checks that the store can be addressed
func (v *RequiredFieldValidator) Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.Store.URL == "" {
		errs = append(errs, ValidationError{Field: "store.url", Message: "is required (" + EnvStoreURL + ")"})
	} else if !strings.HasPrefix(cfg.Store.URL, "http://") && !strings.HasPrefix(cfg.Store.URL, "https://") {
		errs = append(errs, ValidationError{Field: "store.url", Message: "must start with http:// or https://"})
	}

	if cfg.Store.APIVersion == "" {
		errs = append(errs, ValidationError{Field: "store.api_version", Message: "is required (" + EnvAPIVersion + ")"})
	}

	return errs
}

// AuthValidator handles authentication validation
type AuthValidator struct{}

// Validate checks that authentication configuration is valid
func (v *AuthValidator) Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.Auth == nil {
		return append(errs, ValidationError{Field: "auth", Message: "is required"})
	}

	switch cfg.Auth.Type {
	case AuthTypeAPIKey:
		if cfg.Auth.Header == "" {
			errs = append(errs, ValidationError{Field: "auth.header", Message: "is required for api_key auth"})
		}
	case AuthTypeBearer:
	default:
		errs = append(errs, ValidationError{Field: "auth.type", Message: fmt.Sprintf("unknown auth type: %s", cfg.Auth.Type)})
	}

	if cfg.Auth.Token == "" {
		errs = append(errs, ValidationError{Field: "auth.token", Message: "is required (" + EnvAdminToken + ")"})
	}

	return errs
}
