// Package markup treats the document format as an external tree provider:
// it exposes just enough structure (title, page-* attributes, top-level
// unordered lists) for the navigation builder and composer to consume, and
// two splice points — include expansion and cross-reference resolution —
// driven entirely through the IncludeResolver and PageRefResolver
// capability interfaces. Nothing downstream of this package knows the
// source is AsciiDoc; it only knows Document and the two hooks.
package markup
