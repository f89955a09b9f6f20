package auth

import (
	"fmt"

	"github.com/saturnines/product-search/pkg/config"
	"github.com/saturnines/product-search/pkg/errors"
)

// Creator functions for auth handlers

func createAPIKeyAuth(authConfig *config.Auth) (Handler, error) {
	if authConfig.Token == "" {
		return nil, errors.WrapError(
			fmt.Errorf("access token is required"),
			errors.ErrConfiguration,
			"create API key auth",
		)
	}
	header := authConfig.Header
	if header == "" {
		header = config.DefaultAccessTokenHeader
	}
	return NewAPIKeyAuth(header, authConfig.Token), nil
}

func createBearerAuth(authConfig *config.Auth) (Handler, error) {
	if authConfig.Token == "" {
		return nil, errors.WrapError(
			fmt.Errorf("bearer token is required"),
			errors.ErrConfiguration,
			"create bearer auth",
		)
	}
	return NewBearerAuth(authConfig.Token), nil
}
