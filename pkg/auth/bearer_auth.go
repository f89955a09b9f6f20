package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/saturnines/product-search/pkg/config"
	"github.com/saturnines/product-search/pkg/errors"
)

// BearerAuth is for stores reached through a gateway that fronts the Admin
// API. The gateway checks the bearer credential and attaches the store's
// access token itself, so direct store URLs should use APIKeyAuth.
type BearerAuth struct {
	Token string
}

// NewBearerAuth returns a handler sending token as a bearer credential.
func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{Token: token}
}

// ApplyAuth sets "Authorization: Bearer <token>" and drops any store access
// token header, which only the gateway may set.
func (b *BearerAuth) ApplyAuth(req *http.Request) error {
	token := strings.TrimSpace(b.Token)
	if token == "" {
		return errors.WrapError(
			fmt.Errorf("gateway token is required"),
			errors.ErrAuthentication,
			"apply bearer auth",
		)
	}

	req.Header.Del(config.DefaultAccessTokenHeader)
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (b *BearerAuth) String() string {
	return "BearerAuth(gateway)"
}
