package checks

import (
	"path/filepath"

	"github.com/conflint/conflint/pkg/frontmatter"
)

// CheckCommands validates every command document in commands/: each must
// carry frontmatter with a description field.
func CheckCommands(root string) (Result, error) {
	var result Result

	if !isDir(filepath.Join(root, "commands")) {
		result.errorf(CategoryCmdDir, "commands/ directory not found")
		return result, nil
	}

	files, err := globSorted(root, "commands/*.md")
	if err != nil {
		return result, err
	}

	for _, file := range files {
		name := filepath.Base(file)
		content, err := readFile(filepath.Join(root, file))
		if err != nil {
			return result, err
		}

		fm := frontmatter.Parse(content)
		if fm == nil {
			result.errorf(CategoryCmdFrontmatter, "%s: Missing or invalid frontmatter", name)
			continue
		}

		if _, ok := fm["description"]; !ok {
			result.errorf(CategoryCmdField, "%s: Missing %q field", name, "description")
		}
	}

	return result, nil
}
