// Package config defines the Playbook record consumed by the content pipeline
// and the loader that builds one from a YAML file plus environment overlay.
//
// The Playbook itself is treated as an opaque external input by the core
// pipeline packages (aggregate, catalog, resolve, nav, compose): they only
// read its fields, never mutate it. Building one from CLI flags is out of
// scope; this package only covers the YAML representation and its defaults.
package config
