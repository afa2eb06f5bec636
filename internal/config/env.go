package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// defaultCacheDirName is the cache directory basename used when the playbook
// does not set runtime.cacheDir. NODE_ENV=test switches to a distinct name so
// test runs never share a cache with a developer's real invocation.
const (
	defaultCacheDirName     = ".sitepipe-cache"
	defaultTestCacheDirName = ".sitepipe-cache-test"
)

// loadEnvOverlay loads .env then .env.local from dir, in that order, without
// overriding variables already present in the process environment. Missing
// files are not an error; a malformed file is.
func loadEnvOverlay(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// isTestEnv reports whether NODE_ENV=test, the one env var this package reads.
func isTestEnv() bool {
	return os.Getenv("NODE_ENV") == "test"
}

// defaultCacheDir returns the cache directory to use when the playbook
// leaves runtime.cacheDir unset, rooted at the playbook's own directory.
func defaultCacheDir(playbookDir string) string {
	name := defaultCacheDirName
	if isTestEnv() {
		name = defaultTestCacheDirName
	}
	return filepath.Join(playbookDir, name)
}
