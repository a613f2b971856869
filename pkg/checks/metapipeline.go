package checks

import (
	"path/filepath"
	"slices"

	"github.com/conflint/conflint/pkg/frontmatter"
)

const metaReviewerFile = "meta_reviewer.md"

var builderSkills = []string{"agent-builder", "skill-builder"}

// CheckMetaPipeline verifies the meta-review wiring: the meta_reviewer
// agent must exist and reference both builder skills, and both builder
// skill descriptors must be present.
func CheckMetaPipeline(root string) (Result, error) {
	var result Result

	metaPath := filepath.Join(root, "agents", metaReviewerFile)
	if !fileExists(metaPath) {
		result.errorf(CategoryMetaPipeline, "agents/%s not found", metaReviewerFile)
		return result, nil
	}

	content, err := readFile(metaPath)
	if err != nil {
		return result, err
	}

	skills := frontmatter.Skills(content)
	for _, builder := range builderSkills {
		if !slices.Contains(skills, builder) {
			result.errorf(CategoryMetaPipeline, "%s: %q missing from skills", metaReviewerFile, builder)
		}
	}

	for _, builder := range builderSkills {
		if !fileExists(filepath.Join(root, "skills", builder, skillFileName)) {
			result.errorf(CategoryMetaPipeline, "skills/%s/SKILL.md not found", builder)
		}
	}

	return result, nil
}
