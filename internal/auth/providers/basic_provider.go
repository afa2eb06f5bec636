package providers

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/inful/sitepipe/internal/config"
)

// BasicProvider handles AuthTypeBasic: a plain username and password.
type BasicProvider struct{}

func NewBasicProvider() *BasicProvider { return &BasicProvider{} }

func (p *BasicProvider) Type() config.AuthType { return config.AuthTypeBasic }

func (p *BasicProvider) CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	return &http.BasicAuth{
		Username: authCfg.Username,
		Password: authCfg.Password,
	}, nil
}

func (p *BasicProvider) ValidateConfig(authCfg *config.AuthConfig) error {
	if authCfg.Username == "" {
		return fmt.Errorf("username is required for basic authentication")
	}
	if authCfg.Password == "" {
		return fmt.Errorf("password is required for basic authentication")
	}
	return nil
}

func (p *BasicProvider) Name() string { return "BasicProvider" }
