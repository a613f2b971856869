package checks

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// stalePattern pairs a match pattern with the description reported for it.
type stalePattern struct {
	pattern     glob.Glob
	description string
}

var stalePatterns = []stalePattern{
	{glob.MustCompile("*go/go_*"), "old-style Go doc reference"},
	{glob.MustCompile("*python/python_*"), "old-style Python doc reference"},
}

// CheckStale scans agent documents for outdated doc-reference phrasings,
// skipping fenced code blocks (the fence lines themselves toggle state and
// are never scanned). Matches are warnings with 1-indexed line numbers.
// Like CheckReferences, a missing agents/ directory yields no findings.
func CheckStale(root string) (Result, error) {
	var result Result

	if !isDir(filepath.Join(root, "agents")) {
		return result, nil
	}

	files, err := globSorted(root, "agents/*.md")
	if err != nil {
		return result, err
	}

	for _, file := range files {
		name := filepath.Base(file)
		content, err := readFile(filepath.Join(root, file))
		if err != nil {
			return result, err
		}

		inCodeBlock := false
		for i, line := range strings.Split(content, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				inCodeBlock = !inCodeBlock
				continue
			}
			if inCodeBlock {
				continue
			}
			for _, sp := range stalePatterns {
				if sp.pattern.Match(line) {
					result.warnf(CategoryStale, "%s:%d: %s", name, i+1, sp.description)
				}
			}
		}
	}

	return result, nil
}
