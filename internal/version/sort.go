package version

import "sort"

// SortDescending sorts versions newest first in place, using Compare.
func SortDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}
