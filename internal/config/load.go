package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
)

// defaultCloneConcurrency matches internal/aggregate's own fallback, and
// defaultRetryMaxRetries mirrors internal/retry's default policy, so a
// playbook that omits these knobs gets the same behavior whether or not it
// mentions them explicitly.
const (
	defaultCloneConcurrency = 4
	defaultRetryMaxRetries  = 2
)

// LoadPlaybook reads a playbook YAML file at path, overlays .env/.env.local
// from its directory, and applies default values for fields left unset.
// The returned Playbook is ready to pass to the aggregator; callers must not
// mutate it afterward.
func LoadPlaybook(path string) (*Playbook, error) {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if err := loadEnvOverlay(dir); err != nil {
		return nil, apperrors.ConfigError("failed to load .env overlay").
			WithContext("dir", dir).
			WithContext("cause", err.Error()).
			Build()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.ConfigError("failed to read playbook file").
			WithContext("path", path).
			WithContext("cause", err.Error()).
			Build()
	}

	var pb Playbook
	if err := yaml.Unmarshal(raw, &pb); err != nil {
		return nil, apperrors.ConfigError("failed to parse playbook YAML").
			WithContext("path", path).
			WithContext("cause", err.Error()).
			Build()
	}

	pb.Dir = dir
	applyDefaults(&pb)

	if len(pb.Content.Sources) == 0 {
		return nil, apperrors.ConfigError("playbook declares no content sources").
			WithContext("path", path).
			Build()
	}

	return &pb, nil
}

func applyDefaults(pb *Playbook) {
	pb.URLs.HTMLExtensionStyle = NormalizeExtensionStyle(string(pb.URLs.HTMLExtensionStyle))

	if pb.Runtime.CacheDir == "" {
		pb.Runtime.CacheDir = defaultCacheDir(pb.Dir)
	}
	if pb.Runtime.CloneConcurrency <= 0 {
		pb.Runtime.CloneConcurrency = defaultCloneConcurrency
	}
	pb.Runtime.RetryBackoff = NormalizeRetryBackoffMode(string(pb.Runtime.RetryBackoff))
	if pb.Runtime.RetryMaxRetries <= 0 {
		pb.Runtime.RetryMaxRetries = defaultRetryMaxRetries
	}

	for i := range pb.Content.Sources {
		if pb.Content.Sources[i].Auth != nil {
			pb.Content.Sources[i].Auth.Type = NormalizeAuthType(string(pb.Content.Sources[i].Auth.Type))
		}
	}
}
