// Package logfields provides typed slog.Attr constructors so call sites
// never hand-roll slog.String("component", ...) ad hoc, and a key rename
// only touches one place.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent  = "component"
	KeyVersion    = "version"
	KeyModule     = "module"
	KeyFamily     = "family"
	KeyURL        = "url"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRepo       = "repository"
	KeySection    = "section"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Module(m string) slog.Attr       { return slog.String(KeyModule, m) }
func Family(f string) slog.Attr       { return slog.String(KeyFamily, f) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

// Duration converts a time.Duration to the canonical millisecond field.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func File(f string) slog.Attr       { return slog.String(KeyFile, f) }
func Repository(r string) slog.Attr { return slog.String(KeyRepo, r) }
func Section(s string) slog.Attr    { return slog.String(KeySection, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
