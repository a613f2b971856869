package checks

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

const skillFileName = "SKILL.md"

// globSorted returns root-relative paths matching pattern, sorted for
// deterministic traversal. A missing base directory simply yields no
// matches; directory existence is the caller's concern.
func globSorted(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to glob %q under %s", pattern, root)
	}
	sort.Strings(matches)
	return matches, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readFile reads a file that a directory listing just reported; failure
// here is a filesystem fault, not a lint finding.
func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(content), nil
}

// skillDirNames returns the names of subdirectories of skills/ that
// contain a SKILL.md descriptor, which is what makes a directory a skill.
func skillDirNames(root string) (map[string]bool, error) {
	skillsDir := filepath.Join(root, "skills")
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", skillsDir)
	}

	names := make(map[string]bool)
	for _, entry := range entries {
		// os.Stat so that symlinked skill directories count too
		if !isDir(filepath.Join(skillsDir, entry.Name())) {
			continue
		}
		if fileExists(filepath.Join(skillsDir, entry.Name(), skillFileName)) {
			names[entry.Name()] = true
		}
	}
	return names, nil
}
