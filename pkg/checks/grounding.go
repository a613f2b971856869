package checks

import "path/filepath"

// groundingRequirement names the reference files a builder skill must ship
// alongside its descriptor.
type groundingRequirement struct {
	skill string
	refs  []string
}

// groundingRequirements is ordered; findings follow this order.
var groundingRequirements = []groundingRequirement{
	{
		skill: "agent-builder",
		refs: []string{
			"references/anthropic-agent-authoring.md",
			"references/anthropic-prompt-engineering.md",
		},
	},
	{
		skill: "skill-builder",
		refs: []string{
			"references/anthropic-skill-authoring.md",
		},
	},
}

// CheckGrounding verifies that each builder skill ships its required
// grounding reference files. A missing skill directory is reported once
// and its per-file checks are skipped.
func CheckGrounding(root string) (Result, error) {
	var result Result

	for _, req := range groundingRequirements {
		skillDir := filepath.Join(root, "skills", req.skill)
		if !isDir(skillDir) {
			result.errorf(CategoryGrounding, "skills/%s: Directory not found", req.skill)
			continue
		}
		for _, ref := range req.refs {
			if !fileExists(filepath.Join(skillDir, ref)) {
				result.errorf(CategoryGrounding, "%s/%s: File not found", req.skill, ref)
			}
		}
	}

	return result, nil
}
