package providers

import (
	"net"
	"os"
	"testing"

	"github.com/inful/sitepipe/internal/config"
)

func TestSSHAgentProvider_NoSocket(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")
	p := NewSSHAgentProvider()

	if err := p.ValidateConfig(&config.AuthConfig{}); err == nil {
		t.Errorf("ValidateConfig() expected error when SSH_AUTH_SOCK unset")
	}

	if _, err := p.CreateAuth(&config.AuthConfig{}); err == nil {
		t.Errorf("CreateAuth() expected error when SSH_AUTH_SOCK unset")
	}
}

func TestSSHAgentProvider_DefaultsUserToGit(t *testing.T) {
	sockPath := t.TempDir() + "/agent.sock"
	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("failed to create fake agent socket: %v", err)
	}
	defer listener.Close()
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	t.Setenv("SSH_AUTH_SOCK", sockPath)

	p := NewSSHAgentProvider()
	if err := p.ValidateConfig(&config.AuthConfig{}); err != nil {
		t.Fatalf("ValidateConfig() unexpected error: %v", err)
	}

	method, err := p.CreateAuth(&config.AuthConfig{})
	if err != nil {
		t.Fatalf("CreateAuth() unexpected error: %v", err)
	}
	if method == nil {
		t.Fatalf("CreateAuth() returned nil method")
	}
}

func TestSSHAgentProvider_Type(t *testing.T) {
	p := NewSSHAgentProvider()
	if p.Type() != config.AuthTypeSSHAgent {
		t.Errorf("Type() = %v, want %v", p.Type(), config.AuthTypeSSHAgent)
	}
	if p.Name() == "" {
		t.Errorf("Name() should not be empty")
	}
	_ = os.Getenv("SSH_AUTH_SOCK")
}
