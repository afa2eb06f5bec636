package config

import "github.com/inful/sitepipe/internal/foundation/normalization"

// AuthType selects which credential scheme a Source's git remote uses.
type AuthType string

const (
	AuthTypeNone     AuthType = "none"
	AuthTypeSSH      AuthType = "ssh"
	AuthTypeSSHAgent AuthType = "ssh-agent"
	AuthTypeToken    AuthType = "token"
	AuthTypeBasic    AuthType = "basic"
)

var authTypeNormalizer = normalization.NewEnumNormalizer("auth.type", map[string]AuthType{
	"none":      AuthTypeNone,
	"ssh":       AuthTypeSSH,
	"ssh-agent": AuthTypeSSHAgent,
	"sshagent":  AuthTypeSSHAgent,
	"token":     AuthTypeToken,
	"basic":     AuthTypeBasic,
}, AuthTypeNone)

// NormalizeAuthType maps a raw playbook value to a known AuthType.
func NormalizeAuthType(raw string) AuthType {
	return authTypeNormalizer.Normalize(raw)
}

// AuthConfig describes how to authenticate against a single Source's remote.
type AuthConfig struct {
	Type     AuthType `yaml:"type"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Token    string   `yaml:"token"`
	KeyPath  string   `yaml:"keyPath"`
}
