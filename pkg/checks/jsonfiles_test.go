package checks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckJSONAllAbsent(t *testing.T) {
	root := t.TempDir()

	result, err := CheckJSON(root)
	require.NoError(t, err)
	assertNoFindings(t, result)
}

func TestCheckJSONValidFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.json"), `{"theme": "dark"}`)
	writeFile(t, filepath.Join(root, "hooks.json"), `{"hooks": []}`)
	writeFile(t, filepath.Join(root, "schemas", "agent.json"), `{"type": "object"}`)

	result, err := CheckJSON(root)
	require.NoError(t, err)
	assertNoFindings(t, result)
}

func TestCheckJSONInvalidRootFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.json"), `{not json`)

	result, err := CheckJSON(root)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, CategoryJSONInvalid, result.Errors[0].Category)
	assert.Contains(t, result.Errors[0].Message, "settings.json")
}

func TestCheckJSONInvalidSchema(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "schemas", "x.json"), `{invalid`)

	result, err := CheckJSON(root)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, CategoryJSONInvalid, result.Errors[0].Category)
	assert.Contains(t, result.Errors[0].Message, "schemas/x.json")
}

func TestCheckJSONSchemaOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "schemas", "b.json"), `{bad`)
	writeFile(t, filepath.Join(root, "schemas", "a.json"), `also bad`)

	result, err := CheckJSON(root)
	require.NoError(t, err)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0].Message, "schemas/a.json")
	assert.Contains(t, result.Errors[1].Message, "schemas/b.json")
}
