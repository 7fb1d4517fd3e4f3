package core

import (
	"fmt"
	"path/filepath"
	"sort"
)

// LatestInputFile returns the lexically-latest file in dataDir matching
// pattern. Monthly exports carry a sortable date prefix, so the last
// name in lexical order is the most recent month.
func LatestInputFile(dataDir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no %s under %s", ErrNoInputFile, pattern, dataDir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
