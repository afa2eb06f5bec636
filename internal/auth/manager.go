package auth

import (
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/inful/sitepipe/internal/auth/providers"
	"github.com/inful/sitepipe/internal/config"
)

// Manager builds transport.AuthMethod values from config.AuthConfig using
// the standard provider registry.
type Manager struct {
	registry *providers.AuthProviderRegistry
}

// NewManager creates a Manager wired with the standard providers.
func NewManager() *Manager {
	return &Manager{registry: providers.NewAuthProviderRegistry()}
}

// CreateAuth builds the auth method for authCfg, validating it first.
func (m *Manager) CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	return m.registry.CreateAuth(authCfg)
}

// DefaultManager is the package-level Manager used by CreateAuth.
var DefaultManager = NewManager()

// CreateAuth builds the auth method for authCfg using DefaultManager.
func CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	return DefaultManager.CreateAuth(authCfg)
}
