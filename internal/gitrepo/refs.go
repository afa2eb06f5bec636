package gitrepo

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/inful/sitepipe/internal/config"
)

// RefType distinguishes the two kinds of refs the aggregator materializes
// files from.
type RefType string

const (
	RefTypeBranch RefType = "branch"
	RefTypeTag    RefType = "tag"
)

// MatchedRef is a single resolved branch or tag ready for file
// materialization.
type MatchedRef struct {
	Name string
	Type RefType
	Hash plumbing.Hash
}

// SelectBranches implements spec.md §4.4 step 4 for branches: enumerate
// local and remote-tracking branch refs, de-duplicate same-named pairs
// (preferring the remote-tracking ref in a bare repo, the local ref
// otherwise), resolve the "HEAD"/"." literals to the repo's current branch,
// and keep only shorthands matching any of patterns.
func SelectBranches(repo *git.Repository, isBare bool, patterns config.Patterns) ([]MatchedRef, error) {
	candidates, err := collectBranchCandidates(repo)
	if err != nil {
		return nil, err
	}
	deduped := dedupeBranches(candidates, isBare)

	currentBranch, hasCurrent := currentBranchShorthand(repo)

	var matched []MatchedRef
	for name, hash := range deduped {
		if matchesAny(name, patterns, currentBranch, hasCurrent) {
			matched = append(matched, MatchedRef{Name: name, Type: RefTypeBranch, Hash: hash})
		}
	}
	return matched, nil
}

// SelectTags implements spec.md §4.4 step 4 for tags. Per spec.md §9's open
// questions, "HEAD"/"." literals are not honored for tags.
func SelectTags(repo *git.Repository, patterns config.Patterns) ([]MatchedRef, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var matched []MatchedRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if matchesPatterns(name, patterns) {
			matched = append(matched, MatchedRef{Name: name, Type: RefTypeTag, Hash: ref.Hash()})
		}
		return nil
	})
	return matched, err
}

type branchCandidate struct {
	name     string
	hash     plumbing.Hash
	isRemote bool
}

func collectBranchCandidates(repo *git.Repository) ([]branchCandidate, error) {
	iter, err := repo.Storer.IterReferences()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var candidates []branchCandidate
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			candidates = append(candidates, branchCandidate{name: name.Short(), hash: ref.Hash(), isRemote: false})
		case name.IsRemote():
			short := name.Short() // "origin/branch-name"
			parts := strings.SplitN(short, "/", 2)
			if len(parts) == 2 && parts[1] != "HEAD" {
				candidates = append(candidates, branchCandidate{name: parts[1], hash: ref.Hash(), isRemote: true})
			}
		}
		return nil
	})
	return candidates, err
}

// dedupeBranches collapses local/remote-tracking pairs for the same branch
// name, preferring the remote-tracking ref in a bare repo and the local ref
// otherwise.
func dedupeBranches(candidates []branchCandidate, isBare bool) map[string]plumbing.Hash {
	result := make(map[string]plumbing.Hash)
	preferRemote := make(map[string]bool)

	for _, c := range candidates {
		existingPreferred, seen := preferRemote[c.name]
		preferThis := c.isRemote == isBare // remote preferred in bare, local otherwise
		if !seen || (preferThis && !existingPreferred) {
			result[c.name] = c.hash
			preferRemote[c.name] = preferThis
		}
	}
	return result
}

func currentBranchShorthand(repo *git.Repository) (string, bool) {
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return "", false
	}
	return head.Name().Short(), true
}

func matchesAny(name string, patterns config.Patterns, currentBranch string, hasCurrent bool) bool {
	for _, pattern := range patterns {
		if config.IsCurrentBranchLiteral(pattern) {
			if hasCurrent && name == currentBranch {
				return true
			}
			continue
		}
		if globMatch(pattern, name) {
			return true
		}
	}
	return false
}

func matchesPatterns(name string, patterns config.Patterns) bool {
	for _, pattern := range patterns {
		if globMatch(pattern, name) {
			return true
		}
	}
	return false
}

// globMatch matches name against pattern using shell-glob semantics,
// falling back to a simple "*"-as-wildcard regex-free substitution for
// patterns filepath.Match rejects (it does not allow "*" to cross "/").
func globMatch(pattern, name string) bool {
	if ok, err := filepath.Match(pattern, name); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return pattern == name
	}
	return wildcardMatch(pattern, name)
}

func wildcardMatch(pattern, name string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == name
	}
	if !strings.HasPrefix(name, parts[0]) {
		return false
	}
	name = name[len(parts[0]):]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(name, part)
		if idx < 0 {
			return false
		}
		name = name[idx+len(part):]
	}
	return strings.HasSuffix(name, parts[len(parts)-1])
}
