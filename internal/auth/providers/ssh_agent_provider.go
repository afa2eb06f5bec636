package providers

import (
	"fmt"
	"net"
	"os"

	"github.com/go-git/go-git/v5/plumbing/transport"
	gossh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/agent"

	"github.com/inful/sitepipe/internal/config"
)

// SSHAgentProvider handles AuthTypeSSHAgent: credentials taken from a running
// ssh-agent over SSH_AUTH_SOCK, rather than a key file named in the config.
type SSHAgentProvider struct{}

func NewSSHAgentProvider() *SSHAgentProvider { return &SSHAgentProvider{} }

func (p *SSHAgentProvider) Type() config.AuthType { return config.AuthTypeSSHAgent }

func (p *SSHAgentProvider) CreateAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil, fmt.Errorf("SSH_AUTH_SOCK is not set, no ssh-agent available")
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ssh-agent at %s: %w", sock, err)
	}

	user := authCfg.Username
	if user == "" {
		user = "git"
	}

	client := agent.NewClient(conn)
	return &gossh.PublicKeysCallback{User: user, Callback: client.Signers}, nil
}

func (p *SSHAgentProvider) ValidateConfig(_ *config.AuthConfig) error {
	if os.Getenv("SSH_AUTH_SOCK") == "" {
		return fmt.Errorf("SSH_AUTH_SOCK is not set")
	}
	return nil
}

func (p *SSHAgentProvider) Name() string { return "SSHAgentProvider" }
