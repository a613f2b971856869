package checks

import (
	"path/filepath"

	"github.com/conflint/conflint/pkg/frontmatter"
)

// requiredAgentFields are the frontmatter fields every agent must declare.
var requiredAgentFields = []string{"name", "description", "tools", "model", "skills"}

// acceptedModels are the only valid values for an agent's model field.
var acceptedModels = map[string]bool{
	"sonnet": true,
	"opus":   true,
	"haiku":  true,
}

// CheckAgents validates every agent document in agents/: frontmatter
// presence, required fields, model value, and that each referenced skill
// resolves to an existing skill package.
func CheckAgents(root string) (Result, error) {
	var result Result

	if !isDir(filepath.Join(root, "agents")) {
		result.errorf(CategoryAgentDir, "agents/ directory not found")
		return result, nil
	}

	availableSkills, err := skillDirNames(root)
	if err != nil {
		return result, err
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

		fm := frontmatter.Parse(content)
		if fm == nil {
			result.errorf(CategoryAgentFrontmatter, "%s: Missing or invalid frontmatter", name)
			continue
		}

		for _, field := range requiredAgentFields {
			if _, ok := fm[field]; !ok {
				result.errorf(CategoryAgentField, "%s: Missing required field %q", name, field)
			}
		}

		if model, ok := fm["model"]; ok && !acceptedModels[model] {
			result.errorf(CategoryAgentModel, "%s: Invalid model %q (expected sonnet/opus/haiku)", name, model)
		}

		for _, skill := range frontmatter.Skills(content) {
			if !availableSkills[skill] {
				result.errorf(CategorySkillRef, "%s: References non-existent skill %q", name, skill)
			}
		}
	}

	return result, nil
}
