// Package errors provides foundational, type-safe error primitives used across sitepipe.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, network, git, build, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, immediate, backoff, rate_limit, user)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter for exit-code and message presentation
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryGit, "clone failed").
//		WithSeverity(errors.SeverityError).
//		WithRetry(errors.RetryBackoff).
//		WithContext("url", repoURL).
//		WithCause(originalErr).
//		Build()
package errors
