package aggregate

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inful/sitepipe/internal/aggmetrics"
	"github.com/inful/sitepipe/internal/config"
	"github.com/inful/sitepipe/internal/gitrepo"
	"github.com/inful/sitepipe/internal/version"
)

const defaultCloneConcurrency = 4

// Aggregate implements spec.md §4.4's full per-source protocol plus its
// concurrency model from §5: one task per unique source URL, run in
// parallel with a bounded fan-out, with ref expansion for sub-sources of
// the same URL also running in parallel. Any source failure aborts the
// whole aggregation with the first error. recorder may be nil, in which
// case no metrics are observed.
func Aggregate(ctx context.Context, pb *config.Playbook, sink gitrepo.ProgressSink, recorder aggmetrics.Recorder) ([]ComponentVersionBundle, error) {
	if recorder == nil {
		recorder = aggmetrics.NoopRecorder{}
	}
	start := time.Now()
	defer func() { recorder.ObserveAggregationDuration(time.Since(start)) }()

	byURL := make(map[string][]int)
	for i, s := range pb.Content.Sources {
		byURL[s.URL] = append(byURL[s.URL], i)
	}

	concurrency := pb.Runtime.CloneConcurrency
	if concurrency <= 0 {
		concurrency = defaultCloneConcurrency
	}
	recorder.SetFetchConcurrency(concurrency)

	outer, ctx := errgroup.WithContext(ctx)
	outer.SetLimit(concurrency)

	type indexed struct {
		sourceIndex int
		bundle      refBundle
	}
	var (
		mu        sync.Mutex
		collected []indexed
	)

	for url, indices := range byURL {
		url, indices := url, indices
		outer.Go(func() error {
			firstSource := pb.Content.Sources[indices[0]]
			fetchStart := time.Now()
			handle, isRemote, err := openSourceURL(pb, url, firstSource.Auth, sink)
			result := aggmetrics.FetchSuccess
			if err != nil {
				result = aggmetrics.FetchFailed
			}
			recorder.ObserveRepoFetchDuration(url, time.Since(fetchStart), result)
			recorder.IncRepoFetchResult(result)
			if err != nil {
				return err
			}
			headBranch := checkedOutBranch(handle)

			inner, _ := errgroup.WithContext(ctx)
			for _, idx := range indices {
				idx := idx
				inner.Go(func() error {
					source := pb.Content.Sources[idx]
					bundles, err := aggregateSource(handle, isRemote, headBranch, pb.Content, source)
					if err != nil {
						return err
					}
					mu.Lock()
					for _, b := range bundles {
						collected = append(collected, indexed{sourceIndex: idx, bundle: b})
					}
					mu.Unlock()
					return nil
				})
			}
			return inner.Wait()
		})
	}

	if err := outer.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(collected, func(i, j int) bool { return collected[i].sourceIndex < collected[j].sourceIndex })

	ordered := make([]refBundle, len(collected))
	for i, c := range collected {
		ordered[i] = c.bundle
	}
	return groupBundles(ordered), nil
}

// openSourceURL classifies and opens (or clones) the repository backing a
// source URL once, shared by every sub-source that declares the same URL.
func openSourceURL(pb *config.Playbook, url string, auth *config.AuthConfig, sink gitrepo.ProgressSink) (*gitrepo.Handle, bool, error) {
	isRemote := gitrepo.IsRemoteURL(url)
	if isRemote {
		path := gitrepo.CachePath(pb.Runtime.CacheDir, url)
		handle, err := gitrepo.OpenOrClone(path, url, true, auth, pb.Runtime, sink)
		return handle, true, err
	}

	resolvedPath, _, err := gitrepo.ClassifyLocalSource(pb.Dir, url)
	if err != nil {
		return nil, false, err
	}
	handle, err := gitrepo.OpenOrClone(resolvedPath, url, false, auth, pb.Runtime, sink)
	return handle, false, err
}

// checkedOutBranch returns the shorthand of the repo's currently checked
// out branch, used to decide whether a matched branch ref is HEAD of a
// non-bare, non-remote clone (spec.md §4.4 step 5's working-tree case).
func checkedOutBranch(handle *gitrepo.Handle) string {
	head, err := handle.Repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// aggregateSource expands one source's branch/tag patterns into matched
// refs and materializes each ref's files and component descriptor.
func aggregateSource(handle *gitrepo.Handle, isRemote bool, headBranch string, content config.ContentConfig, source config.Source) ([]refBundle, error) {
	branches, err := gitrepo.SelectBranches(handle.Repo, handle.IsBare, source.EffectiveBranches(content))
	if err != nil {
		return nil, err
	}
	tags, err := gitrepo.SelectTags(handle.Repo, source.EffectiveTags(content))
	if err != nil {
		return nil, err
	}

	refs := make([]gitrepo.MatchedRef, 0, len(branches)+len(tags))
	refs = append(refs, branches...)
	refs = append(refs, tags...)

	bundles := make([]refBundle, 0, len(refs))
	for _, ref := range refs {
		isHeadRef := !handle.IsBare && !isRemote && ref.Type == gitrepo.RefTypeBranch && headBranch != "" && ref.Name == headBranch

		files, err := gitrepo.WalkRef(handle, ref, isHeadRef, source.StartPath)
		if err != nil {
			return nil, err
		}
		descriptor, err := ParseDescriptor(files, DefaultDescriptorName)
		if err != nil {
			return nil, err
		}

		origin := gitrepo.ComputeOrigin(source.URL, source.StartPath, ref.Name, ref.Type, isHeadRef)
		for i := range files {
			files[i].Origin = origin
		}
		bundles = append(bundles, refBundle{
			descriptor: descriptor,
			files:      files,
			startPath:  source.StartPath,
			origin:     origin,
		})
	}
	return bundles, nil
}

// groupBundles implements spec.md §4.4 step 8: flatten and group by
// "{version}@{name}", merging scalar fields last-write-wins and
// concatenating files in (already-established) source-declaration order.
// The result is sorted by (name, version descending) per spec.md §5.
func groupBundles(bundles []refBundle) []ComponentVersionBundle {
	order := make([]string, 0, len(bundles))
	byKey := make(map[string]*ComponentVersionBundle, len(bundles))

	for _, rb := range bundles {
		key := rb.descriptor.Version + "@" + rb.descriptor.Name
		bundle, ok := byKey[key]
		if !ok {
			bundle = &ComponentVersionBundle{Name: rb.descriptor.Name, Version: rb.descriptor.Version}
			byKey[key] = bundle
			order = append(order, key)
		}
		if rb.descriptor.Title != "" {
			bundle.Title = rb.descriptor.Title
		}
		if rb.descriptor.StartPage != "" {
			bundle.StartPage = rb.descriptor.StartPage
		}
		if len(rb.descriptor.Nav) > 0 {
			bundle.Nav = rb.descriptor.Nav
		}
		bundle.StartPath = rb.startPath
		bundle.Files = append(bundle.Files, rb.files...)
	}

	result := make([]ComponentVersionBundle, len(order))
	for i, key := range order {
		result[i] = *byKey[key]
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return version.Compare(result[i].Version, result[j].Version) < 0
	})
	return result
}
