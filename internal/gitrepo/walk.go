package gitrepo

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RawFile is a single file materialized from a ref, with its path relative
// to startPath and its full contents. Origin is left zero-valued by WalkRef
// itself; a caller that knows which (source, ref) produced the walk stamps
// it afterward, since a materialized file must carry the origin of the ref
// it actually came from rather than whichever ref a caller merges it with.
type RawFile struct {
	Path     string // posix-style, relative to startPath
	Contents []byte
	Origin   Origin
}

// WalkRef implements spec.md §4.4 step 5: the working tree is walked
// directly when ref is HEAD of a non-bare, non-remote clone; otherwise the
// git tree at ref's commit is walked. In both cases entries whose basename
// starts with "." or has no extension are ignored.
func WalkRef(handle *Handle, ref MatchedRef, isHeadRef bool, startPath string) ([]RawFile, error) {
	if isHeadRef && !handle.IsBare && !handle.IsRemote {
		return walkWorkingTree(handle.Path, startPath)
	}
	return walkGitTree(handle.Repo, ref.Hash, startPath)
}

func walkWorkingTree(repoPath, startPath string) ([]RawFile, error) {
	root := filepath.Join(repoPath, startPath)

	var files []RawFile
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !includeEntry(d.Name()) {
			return nil
		}
		contents, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, RawFile{Path: filepath.ToSlash(rel), Contents: contents})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func walkGitTree(repo *git.Repository, hash plumbing.Hash, startPath string) ([]RawFile, error) {
	commit, err := repo.CommitObject(hash)
	if err != nil {
		// Tag refs may point at an annotated tag object rather than a commit.
		tag, tagErr := repo.TagObject(hash)
		if tagErr != nil {
			return nil, err
		}
		commit, err = tag.Commit()
		if err != nil {
			return nil, err
		}
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}

	root := tree
	startPath = strings.Trim(startPath, "/")
	if startPath != "" {
		entry, err := tree.Tree(startPath)
		if err != nil {
			return nil, err
		}
		root = entry
	}

	var files []RawFile
	walker := object.NewTreeWalker(root, true, nil)
	defer walker.Close()

	for {
		name, entry, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !entry.Mode.IsFile() {
			continue
		}
		if !includeEntry(path.Base(name)) {
			continue
		}
		blob, err := repo.BlobObject(entry.Hash)
		if err != nil {
			return nil, err
		}
		contents, err := readBlob(blob)
		if err != nil {
			return nil, err
		}
		files = append(files, RawFile{Path: name, Contents: contents})
	}
	return files, nil
}

func readBlob(blob *object.Blob) ([]byte, error) {
	reader, err := blob.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// includeEntry applies the materialization filter common to both walk
// strategies: dotfiles and extensionless entries are ignored.
func includeEntry(basename string) bool {
	if strings.HasPrefix(basename, ".") {
		return false
	}
	return path.Ext(basename) != ""
}
