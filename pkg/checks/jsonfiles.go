package checks

import (
	"encoding/json"
	"path/filepath"
)

// rootJSONFiles are the optional JSON files checked at the config root.
var rootJSONFiles = []string{"settings.json", "hooks.json"}

// CheckJSON validates that settings.json, hooks.json, and every schema
// under schemas/ parse as JSON. Absent files are fine; present but
// unparseable files are errors carrying the decoder's message.
func CheckJSON(root string) (Result, error) {
	var result Result

	for _, name := range rootJSONFiles {
		path := filepath.Join(root, name)
		if !fileExists(path) {
			continue
		}
		content, err := readFile(path)
		if err != nil {
			return result, err
		}
		if err := validateJSON(content); err != nil {
			result.errorf(CategoryJSONInvalid, "%s: %v", name, err)
		}
	}

	files, err := globSorted(root, "schemas/*.json")
	if err != nil {
		return result, err
	}
	for _, file := range files {
		content, err := readFile(filepath.Join(root, file))
		if err != nil {
			return result, err
		}
		if err := validateJSON(content); err != nil {
			result.errorf(CategoryJSONInvalid, "schemas/%s: %v", filepath.Base(file), err)
		}
	}

	return result, nil
}

func validateJSON(content string) error {
	var v any
	return json.Unmarshal([]byte(content), &v)
}
