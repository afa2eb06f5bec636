package gitrepo

import (
	"strings"

	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
)

// classifyRemoteError translates a go-git error from an open/clone/fetch
// attempt into the fatal categories spec.md §7 names for remote access
// failures: RepoNotFound, AuthRequired, SSHAgentMissing, or a generic
// retryable TransientIO (modeled as CategoryGit with a retry strategy).
func classifyRemoteError(op, url string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsClassified(err); ok {
		return err
	}

	msg := strings.ToLower(err.Error())
	builder := apperrors.NewError(apperrors.CategoryGit, "git "+op+" failed").
		WithCause(err).
		WithContext("op", op).
		WithContext("url", url)

	switch {
	case strings.Contains(msg, "ssh_auth_sock") || strings.Contains(msg, "ssh-agent"):
		return builder.WithCategory(apperrors.CategorySSHAgent).UserAction().Build()
	case strings.Contains(msg, "authentication") || strings.Contains(msg, "not authorized") ||
		strings.Contains(msg, "could not read username") || strings.Contains(msg, "invalid credentials"):
		return builder.WithCategory(apperrors.CategoryAuth).UserAction().Build()
	case strings.Contains(msg, "repository not found") || strings.Contains(msg, "not found") ||
		strings.Contains(msg, "does not exist"):
		return builder.WithCategory(apperrors.CategoryNotFound).Fatal().Build()
	case strings.Contains(msg, "remote hung up") || strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "no route to host"):
		return builder.Retryable().Build()
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "too many requests"):
		return builder.RateLimit().Build()
	}
	return builder.Fatal().Build()
}

// LocalSourceMissingError reports a local source path that does not exist.
func LocalSourceMissingError(path string) error {
	return apperrors.LocalSourceError("local content source does not exist").
		WithContext("path", path).Build()
}

// LocalSourceNotRepoError reports a local source path that exists but is
// not a git repository (bare or otherwise).
func LocalSourceNotRepoError(path string) error {
	return apperrors.LocalSourceError("local content source is not a git repository").
		WithContext("path", path).Build()
}

// BadDescriptorError reports a missing or malformed antora.yml-equivalent
// component descriptor at a walked root.
func BadDescriptorError(reason, root string) error {
	return apperrors.BadDescriptorError(reason).WithContext("root", root).Build()
}
