package config

import (
	"time"

	"github.com/inful/sitepipe/internal/foundation/normalization"
)

// ExtensionStyle controls how a page's internal path maps to its publish URL.
type ExtensionStyle string

const (
	ExtensionStyleDefault  ExtensionStyle = "default"
	ExtensionStyleDrop     ExtensionStyle = "drop"
	ExtensionStyleIndexify ExtensionStyle = "indexify"
)

var extensionStyleNormalizer = normalization.NewEnumNormalizer("urls.htmlExtensionStyle", map[string]ExtensionStyle{
	"default":  ExtensionStyleDefault,
	"drop":     ExtensionStyleDrop,
	"indexify": ExtensionStyleIndexify,
}, ExtensionStyleDefault)

// NormalizeExtensionStyle maps a raw playbook value to a known ExtensionStyle,
// falling back to ExtensionStyleDefault for anything unrecognized.
func NormalizeExtensionStyle(raw string) ExtensionStyle {
	return extensionStyleNormalizer.Normalize(raw)
}

// RetryBackoffMode selects the growth curve used between aggregator retry attempts.
type RetryBackoffMode string

const (
	RetryBackoffFixed       RetryBackoffMode = "fixed"
	RetryBackoffLinear      RetryBackoffMode = "linear"
	RetryBackoffExponential RetryBackoffMode = "exponential"
)

var retryBackoffNormalizer = normalization.NewEnumNormalizer("runtime.retryBackoff", map[string]RetryBackoffMode{
	"fixed":       RetryBackoffFixed,
	"linear":      RetryBackoffLinear,
	"exponential": RetryBackoffExponential,
}, RetryBackoffLinear)

// NormalizeRetryBackoffMode maps a raw playbook value to a known RetryBackoffMode.
func NormalizeRetryBackoffMode(raw string) RetryBackoffMode {
	return retryBackoffNormalizer.Normalize(raw)
}

// SiteConfig holds the playbook's `site` section.
type SiteConfig struct {
	Title     string            `yaml:"title"`
	URL       string            `yaml:"url"`
	StartPage string            `yaml:"startPage"`
	Keys      map[string]string `yaml:"keys"`
}

// URLsConfig holds the playbook's `urls` section.
type URLsConfig struct {
	HTMLExtensionStyle ExtensionStyle `yaml:"htmlExtensionStyle"`
}

// Source is one entry of `content.sources`: a single git location contributing
// one or more component versions.
type Source struct {
	URL       string      `yaml:"url"`
	Branches  Patterns    `yaml:"branches"`
	Tags      Patterns    `yaml:"tags"`
	StartPath string      `yaml:"startPath"`
	Auth      *AuthConfig `yaml:"auth"`
}

// ContentConfig holds the playbook's `content` section: the source list plus
// branch/tag patterns that apply to any source not carrying its own.
type ContentConfig struct {
	Sources  []Source `yaml:"sources"`
	Branches Patterns `yaml:"branches"`
	Tags     Patterns `yaml:"tags"`
}

// EffectiveBranches returns the source's own branch patterns, falling back to
// the content-level default when the source declares none.
func (s Source) EffectiveBranches(content ContentConfig) Patterns {
	if len(s.Branches) > 0 {
		return s.Branches
	}
	return content.Branches
}

// EffectiveTags returns the source's own tag patterns, falling back to the
// content-level default when the source declares none.
func (s Source) EffectiveTags(content ContentConfig) Patterns {
	if len(s.Tags) > 0 {
		return s.Tags
	}
	return content.Tags
}

// RuntimeConfig holds the playbook's `runtime` section plus the aggregator's
// clone/fetch/retry tuning knobs.
type RuntimeConfig struct {
	CacheDir string `yaml:"cacheDir"`
	Pull     bool   `yaml:"pull"`
	Quiet    bool   `yaml:"quiet"`
	Silent   bool   `yaml:"silent"`

	CloneConcurrency   int              `yaml:"cloneConcurrency"`
	RetryBackoff       RetryBackoffMode `yaml:"retryBackoff"`
	RetryInitialDelay  time.Duration    `yaml:"retryInitialDelay"`
	RetryMaxDelay      time.Duration    `yaml:"retryMaxDelay"`
	RetryMaxRetries    int              `yaml:"retryMaxRetries"`
	HardResetOnDiverge bool             `yaml:"hardResetOnDiverge"`
}

// UIConfig holds the playbook's `ui` section.
type UIConfig struct {
	OutputDir     string `yaml:"outputDir"`
	DefaultLayout string `yaml:"defaultLayout"`
}

// AsciiDocConfig holds the playbook's optional `asciidoc` section.
type AsciiDocConfig struct {
	Attributes map[string]string `yaml:"attributes"`
	Extensions []string          `yaml:"extensions"`
}

// Playbook is the immutable input record consumed by the aggregator, the
// classifier, and the composer. It is built once by LoadPlaybook and never
// mutated afterward; pass it by value or by pointer-to-const, never copy and
// edit a field in place.
type Playbook struct {
	Site     SiteConfig     `yaml:"site"`
	URLs     URLsConfig     `yaml:"urls"`
	Content  ContentConfig  `yaml:"content"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
	UI       UIConfig       `yaml:"ui"`
	AsciiDoc AsciiDocConfig `yaml:"asciidoc"`

	// Dir is the playbook file's containing directory, used to resolve
	// relative local source paths. Not part of the YAML document.
	Dir string `yaml:"-"`
}
