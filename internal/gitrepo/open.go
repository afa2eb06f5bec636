package gitrepo

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/inful/sitepipe/internal/auth"
	"github.com/inful/sitepipe/internal/config"
	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
	"github.com/inful/sitepipe/internal/logfields"
	"github.com/inful/sitepipe/internal/retry"
)

// Handle wraps an opened repository together with the metadata needed to
// release and re-derive paths for it.
type Handle struct {
	Repo     *git.Repository
	Path     string
	IsBare   bool
	IsRemote bool
}

// OpenOrClone implements spec.md §4.4 step 3: open the repo at path (bare or
// working), fetching first when remote and pull is enabled; on open
// failure for a remote source, wipe the cache entry and clone fresh.
func OpenOrClone(path, sourceURL string, isRemote bool, authCfg *config.AuthConfig, runtime config.RuntimeConfig, sink ProgressSink) (*Handle, error) {
	if !isRemote {
		repo, err := git.PlainOpen(path)
		if err != nil {
			return nil, classifyRemoteError("open", sourceURL, err)
		}
		return &Handle{Repo: repo, Path: path, IsBare: isBareRepo(repo), IsRemote: false}, nil
	}

	method, err := auth.CreateAuth(authCfg)
	if err != nil {
		return nil, err
	}

	repo, openErr := git.PlainOpen(path)
	if openErr == nil {
		if runtime.Pull {
			if err := fetchWithRetry(repo, method, runtime, sink); err != nil {
				return nil, err
			}
		}
		return &Handle{Repo: repo, Path: path, IsBare: true, IsRemote: true}, nil
	}

	slog.Debug("cache miss, cloning fresh", logfields.URL(sourceURL), logfields.Path(path))
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("removing stale cache entry %s: %w", path, err)
	}
	repo, err = cloneBareWithRetry(path, sourceURL, method, runtime, sink)
	if err != nil {
		return nil, err
	}
	return &Handle{Repo: repo, Path: path, IsBare: true, IsRemote: true}, nil
}

func isBareRepo(repo *git.Repository) bool {
	cfg, err := repo.Config()
	if err != nil {
		return false
	}
	return cfg.Core.IsBare
}

func cloneBareWithRetry(path, sourceURL string, method transport.AuthMethod, runtime config.RuntimeConfig, sink ProgressSink) (*git.Repository, error) {
	pol := retry.NewPolicy(runtime.RetryBackoff, runtime.RetryInitialDelay, runtime.RetryMaxDelay, runtime.RetryMaxRetries)

	var lastErr error
	for attempt := 0; attempt <= pol.MaxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying git clone", logfields.URL(sourceURL), slog.Int("attempt", attempt))
			time.Sleep(pol.Delay(attempt))
		}
		repo, err := git.PlainClone(path, true, &git.CloneOptions{
			URL:      sourceURL,
			Auth:     method,
			Progress: progressWriter(sink),
		})
		if err == nil {
			return repo, nil
		}
		lastErr = classifyRemoteError("clone", sourceURL, err)
		if !retryableClassified(lastErr) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func fetchWithRetry(repo *git.Repository, method transport.AuthMethod, runtime config.RuntimeConfig, sink ProgressSink) error {
	pol := retry.NewPolicy(runtime.RetryBackoff, runtime.RetryInitialDelay, runtime.RetryMaxDelay, runtime.RetryMaxRetries)

	var lastErr error
	for attempt := 0; attempt <= pol.MaxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying git fetch", slog.Int("attempt", attempt))
			time.Sleep(pol.Delay(attempt))
		}
		err := repo.Fetch(&git.FetchOptions{
			RemoteName: "origin",
			Auth:       method,
			Prune:      true,
			Tags:       git.AllTags,
			Progress:   progressWriter(sink),
		})
		if err == nil || err == git.NoErrAlreadyUpToDate {
			return nil
		}
		lastErr = classifyRemoteError("fetch", "", err)
		if !retryableClassified(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func retryableClassified(err error) bool {
	classified, ok := apperrors.AsClassified(err)
	return ok && classified.CanRetry()
}
