// Package frontmatter extracts flat key/value metadata from the restricted
// YAML-like header dialect used by agent, skill, and command documents.
// It deliberately supports only what those documents use: simple
// `key: value` pairs split on the first colon, quoted values, and folded
// multiline values introduced by `>`. It is not a YAML parser and must not
// grow into one; nested maps, anchors, and lists are out of scope.
package frontmatter

import (
	"regexp"
	"strings"
)

const delimiter = "---"

// keyPattern matches a field key at the start of a line. Continuation
// lines inside a folded block are indented, so they never match.
var keyPattern = regexp.MustCompile(`^[a-zA-Z][-\w]*:`)

type parseState int

const (
	stateNormal parseState = iota
	stateMultiline
)

// Parse extracts the frontmatter mapping from a document. It returns nil
// when the document has no well-formed `---` delimited block: a missing
// opening delimiter and an unterminated block both count as absent.
// A valid block with zero fields yields an empty, non-nil map.
//
// Within the block, a repeated key overwrites the previous value, a value
// of `>` starts a folded block whose non-blank continuation lines are
// joined by single spaces, and a value wrapped in one pair of matching
// straight quotes has exactly that one layer stripped.
func Parse(content string) map[string]string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil
	}

	result := make(map[string]string)
	state := stateNormal
	pendingKey := ""
	accumulated := ""

	for _, line := range lines[1:end] {
		if state == stateMultiline {
			stripped := strings.TrimSpace(line)
			if stripped != "" && !keyPattern.MatchString(line) {
				accumulated += " " + stripped
				continue
			}
			// Flush the folded value. A blank line lands here too: it
			// ends accumulation and then falls through, where the
			// no-colon rule skips it. Preserved as observed behavior.
			if pendingKey != "" {
				result[pendingKey] = strings.TrimSpace(accumulated)
			}
			state = stateNormal
			pendingKey = ""
			accumulated = ""
		}

		if !strings.Contains(line, ":") {
			continue
		}
		// YAML-style list item, not a key
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "-") {
			continue
		}

		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if value == ">" {
			pendingKey = key
			accumulated = ""
			state = stateMultiline
			continue
		}

		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}

		result[key] = value
	}

	if state == stateMultiline && pendingKey != "" {
		result[pendingKey] = strings.TrimSpace(accumulated)
	}

	return result
}

// Skills returns the ordered skill names from the `skills` field of a
// document's frontmatter. The field is either a bare comma-separated list
// or a bracketed one (`skills: [a, b, c]`). Order is preserved and
// duplicates are kept; an absent field or absent frontmatter yields nil.
func Skills(content string) []string {
	fm := Parse(content)
	if fm == nil {
		return nil
	}
	raw, ok := fm["skills"]
	if !ok {
		return nil
	}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2 {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
