package providers

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/inful/sitepipe/internal/config"
)

// TokenProvider handles AuthTypeToken: a personal access token sent as HTTP
// basic auth with a conventional "token" username.
type TokenProvider struct{}

func NewTokenProvider() *TokenProvider { return &TokenProvider{} }

func (p *TokenProvider) Type() config.AuthType { return config.AuthTypeToken }

func (p *TokenProvider) CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	return &http.BasicAuth{
		Username: "token",
		Password: authCfg.Token,
	}, nil
}

func (p *TokenProvider) ValidateConfig(authCfg *config.AuthConfig) error {
	if authCfg.Token == "" {
		return fmt.Errorf("token is required for token authentication")
	}
	return nil
}

func (p *TokenProvider) Name() string { return "TokenProvider" }
