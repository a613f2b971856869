package checks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReferencesSilentWhenAgentsAbsent(t *testing.T) {
	root := t.TempDir()

	result, err := CheckReferences(root)
	require.NoError(t, err)
	assertNoFindings(t, result)
}

func TestCheckReferencesBrokenLink(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "agents", "agent.md"), "See [the guide](guide.md) for details.\n")

	result, err := CheckReferences(root)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, CategoryDocRef, result.Errors[0].Category)
	assert.Contains(t, result.Errors[0].Message, "guide.md")
}

func TestCheckReferencesResolution(t *testing.T) {
	t.Run("relative to root", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "guide.md"), "# Guide\n")
		writeFile(t, filepath.Join(root, "agents", "agent.md"), "[guide](guide.md)\n")

		result, err := CheckReferences(root)
		require.NoError(t, err)
		assertNoFindings(t, result)
	})

	t.Run("relative to docs subdirectory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "docs", "guide.md"), "# Guide\n")
		writeFile(t, filepath.Join(root, "agents", "agent.md"), "[guide](guide.md)\n")

		result, err := CheckReferences(root)
		require.NoError(t, err)
		assertNoFindings(t, result)
	})
}

func TestCheckReferencesSkipsExternalTargets(t *testing.T) {
	root := t.TempDir()
	content := `
[web](https://example.com/page)
[insecure](http://example.com/page)
[anchor](#section)
[mail](mailto:team@example.com)
[parent](../outside.md)
[scheme](ftp://example.com/file)
`
	writeFile(t, filepath.Join(root, "agents", "agent.md"), content)

	result, err := CheckReferences(root)
	require.NoError(t, err)
	assertNoFindings(t, result)
}

func TestCheckReferencesMultipleLinksPerLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "exists.md"), "ok\n")
	writeFile(t, filepath.Join(root, "agents", "agent.md"), "[a](exists.md) and [b](missing.md)\n")

	result, err := CheckReferences(root)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "missing.md")
}
