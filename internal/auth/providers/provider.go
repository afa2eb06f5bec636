package providers

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/inful/sitepipe/internal/config"
)

// AuthProvider builds a transport.AuthMethod for one config.AuthType.
type AuthProvider interface {
	Type() config.AuthType
	CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error)
	ValidateConfig(authCfg *config.AuthConfig) error
	Name() string
}

// AuthProviderRegistry dispatches to the provider registered for an
// AuthConfig's Type.
type AuthProviderRegistry struct {
	providers map[config.AuthType]AuthProvider
}

// NewAuthProviderRegistry creates a registry with the standard providers.
func NewAuthProviderRegistry() *AuthProviderRegistry {
	r := &AuthProviderRegistry{providers: make(map[config.AuthType]AuthProvider)}
	r.Register(NewNoneProvider())
	r.Register(NewSSHProvider())
	r.Register(NewSSHAgentProvider())
	r.Register(NewTokenProvider())
	r.Register(NewBasicProvider())
	return r
}

// Register adds or replaces the provider for its Type().
func (r *AuthProviderRegistry) Register(provider AuthProvider) {
	r.providers[provider.Type()] = provider
}

// GetProvider looks up the provider registered for authType.
func (r *AuthProviderRegistry) GetProvider(authType config.AuthType) (AuthProvider, bool) {
	provider, exists := r.providers[authType]
	return provider, exists
}

// CreateAuth validates then builds authentication for authCfg. A nil authCfg
// is treated as AuthTypeNone.
func (r *AuthProviderRegistry) CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	if authCfg == nil {
		authCfg = &config.AuthConfig{Type: config.AuthTypeNone}
	}

	provider, exists := r.GetProvider(authCfg.Type)
	if !exists {
		return nil, &AuthError{Type: authCfg.Type, Message: "unsupported authentication type"}
	}

	if err := provider.ValidateConfig(authCfg); err != nil {
		return nil, &AuthError{Type: authCfg.Type, Message: "configuration validation failed", Cause: err}
	}

	method, err := provider.CreateAuth(authCfg)
	if err != nil {
		return nil, &AuthError{Type: authCfg.Type, Message: "failed to create authentication", Cause: err}
	}
	return method, nil
}

// AuthError reports a failure building or validating credentials for a
// specific AuthType.
type AuthError struct {
	Type    config.AuthType
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth error (%s): %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("auth error (%s): %s", e.Type, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}
