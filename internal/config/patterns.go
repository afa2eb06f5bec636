package config

import (
	"strings"
)

// Patterns is a list of branch/tag glob patterns. In YAML it accepts either a
// comma-separated string, a list of strings, or the literal HEAD / "." to
// mean "the repository's current branch" (resolved downstream, not here).
type Patterns []string

// UnmarshalYAML accepts a scalar string or a sequence of strings.
func (p *Patterns) UnmarshalYAML(unmarshal func(any) error) error {
	var seq []string
	if err := unmarshal(&seq); err == nil {
		*p = trimAll(seq)
		return nil
	}

	var scalar string
	if err := unmarshal(&scalar); err != nil {
		return err
	}
	*p = trimAll(strings.Split(scalar, ","))
	return nil
}

func trimAll(in []string) Patterns {
	out := make(Patterns, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsCurrentBranchLiteral reports whether a pattern is the special HEAD / "."
// marker meaning "the repository's current branch", rather than a glob.
func IsCurrentBranchLiteral(pattern string) bool {
	return pattern == "HEAD" || pattern == "."
}
