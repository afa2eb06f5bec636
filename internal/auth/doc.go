// Package auth turns a config.AuthConfig into a go-git transport.AuthMethod.
//
// Each AuthType has its own provider; a registry dispatches to the right one
// and validates the configuration before attempting to build credentials, so
// callers get a clear error instead of a cryptic transport failure.
package auth
