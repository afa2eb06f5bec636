// Package version orders the free-form version strings attached to
// documentation components.
//
// Versions rarely follow strict semver ("1.0", "2.3.1-beta", "master"), so
// Compare uses golang.org/x/mod/semver when both inputs parse as valid
// semver (tolerating a missing "v" prefix), and otherwise falls back to a
// dotted numeric-segment comparison with lexicographic tie-breaking on
// non-numeric segments.
package version

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Compare returns a total order over version strings, newest first:
// negative when a is newer than b, positive when b is newer, zero when the
// scheme cannot distinguish them. It is transitive and antisymmetric for any
// pair of inputs reachable through the same comparison path (semver vs.
// segment fallback), which holds because both paths agree on purely numeric
// dotted versions.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	if semA, semB, ok := asSemver(a), asSemver(b), true; ok && semver.IsValid(semA) && semver.IsValid(semB) {
		return -semver.Compare(semA, semB)
	}

	return -compareSegments(a, b)
}

// asSemver prepends "v" when the caller's version omits it, since
// golang.org/x/mod/semver requires the leading "v".
func asSemver(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// compareSegments compares dot-separated segments left to right. Numeric
// segments compare numerically; anything else compares lexicographically. A
// version that is a strict prefix of another (missing trailing segments)
// sorts as older ("1.0" < "1.0.1").
func compareSegments(a, b string) int {
	segA := strings.Split(a, ".")
	segB := strings.Split(b, ".")

	for i := 0; i < len(segA) || i < len(segB); i++ {
		var sa, sb string
		if i < len(segA) {
			sa = segA[i]
		}
		if i < len(segB) {
			sb = segB[i]
		}

		if sa == sb {
			continue
		}
		if sa == "" {
			return -1
		}
		if sb == "" {
			return 1
		}

		na, errA := strconv.Atoi(sa)
		nb, errB := strconv.Atoi(sb)
		if errA == nil && errB == nil {
			if na != nb {
				return na - nb
			}
			continue
		}

		if sa < sb {
			return -1
		}
		return 1
	}
	return 0
}
