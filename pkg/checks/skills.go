package checks

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/conflint/conflint/pkg/frontmatter"
)

// CheckSkills validates every skill package under skills/: the SKILL.md
// descriptor must exist, carry frontmatter, and declare name and
// description. A name that disagrees with the directory is a warning, not
// an error; the skill still works, it is just confusing.
func CheckSkills(root string) (Result, error) {
	var result Result

	skillsDir := filepath.Join(root, "skills")
	if !isDir(skillsDir) {
		result.errorf(CategorySkillDir, "skills/ directory not found")
		return result, nil
	}

	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return result, errors.Wrapf(err, "failed to list %s", skillsDir)
	}

	var dirNames []string
	for _, entry := range entries {
		if isDir(filepath.Join(skillsDir, entry.Name())) {
			dirNames = append(dirNames, entry.Name())
		}
	}
	sort.Strings(dirNames)

	for _, dirName := range dirNames {
		skillFile := filepath.Join(skillsDir, dirName, skillFileName)
		if !fileExists(skillFile) {
			result.errorf(CategorySkillFile, "%s: Missing SKILL.md", dirName)
			continue
		}

		content, err := readFile(skillFile)
		if err != nil {
			return result, err
		}

		fm := frontmatter.Parse(content)
		if fm == nil {
			result.errorf(CategorySkillFrontmatter, "%s/SKILL.md: Missing or invalid frontmatter", dirName)
			continue
		}

		if name, ok := fm["name"]; !ok {
			result.errorf(CategorySkillField, "%s/SKILL.md: Missing %q field", dirName, "name")
		} else if name != dirName {
			result.warnf(CategorySkillNameMismatch, "%s/SKILL.md: name=%q != directory %q", dirName, name, dirName)
		}

		if _, ok := fm["description"]; !ok {
			result.errorf(CategorySkillField, "%s/SKILL.md: Missing %q field", dirName, "description")
		}
	}

	return result, nil
}
