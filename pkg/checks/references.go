package checks

import (
	"path/filepath"
	"regexp"
	"strings"
)

// linkPattern captures markdown link targets. External-scheme and anchor
// targets are filtered out after matching since RE2 has no lookahead.
var linkPattern = regexp.MustCompile(`\]\(([^)]+)\)`)

var externalPrefixes = []string{"http://", "https://", "#", "mailto:"}

// CheckReferences finds broken markdown links in agent documents. A target
// resolves if it exists relative to the root or to the root's docs/
// subdirectory. When agents/ is absent this check has nothing to say; the
// agents check already reports the missing directory.
func CheckReferences(root string) (Result, error) {
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

		for _, match := range linkPattern.FindAllStringSubmatch(content, -1) {
			target := match[1]
			if isExternalTarget(target) {
				continue
			}
			if strings.HasPrefix(target, "../") || strings.Contains(target, "://") {
				continue
			}
			if !fileExists(filepath.Join(root, target)) && !fileExists(filepath.Join(root, "docs", target)) {
				result.errorf(CategoryDocRef, "%s: Broken link to %q", name, target)
			}
		}
	}

	return result, nil
}

func isExternalTarget(target string) bool {
	for _, prefix := range externalPrefixes {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}
	return false
}
