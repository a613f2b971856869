package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeSkill creates a well-formed skill package under root/skills.
func writeSkill(t *testing.T, root, name string) {
	t.Helper()
	writeFile(t, filepath.Join(root, "skills", name, "SKILL.md"), `---
name: `+name+`
description: The `+name+` skill
---

# `+name+`
`)
}

// writeAgent creates an agent document with all required fields whose
// skills field references the given skills.
func writeAgent(t *testing.T, root, name, model, skills string) {
	t.Helper()
	writeFile(t, filepath.Join(root, "agents", name), `---
name: `+name+`
description: Test agent
tools: Read, Grep
model: `+model+`
skills: `+skills+`
---

# Agent
`)
}

func removeFile(path string) error {
	return os.Remove(path)
}

func categories(findings []Finding) []Category {
	result := make([]Category, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Category)
	}
	return result
}

func assertNoFindings(t *testing.T, result Result) {
	t.Helper()
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}
