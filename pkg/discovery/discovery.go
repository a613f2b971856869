// Package discovery loads the catalogue of agents, skills, and commands
// from a configuration root for presentation purposes (the `list`
// subcommand). It parses frontmatter with goldmark's meta extension and is
// intentionally more permissive than the validation checks: entities that
// fail to parse are skipped here and reported by `validate` instead.
package discovery

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/conflint/conflint/pkg/logger"
)

const skillFileName = "SKILL.md"

// Agent is a discovered agent definition.
type Agent struct {
	Name        string
	Description string
	Model       string
	Skills      []string
	Path        string
}

// Skill is a discovered skill package.
type Skill struct {
	Name        string
	Description string
	Directory   string
}

// Command is a discovered command document.
type Command struct {
	Name        string
	Description string
	Path        string
}

// Discovery reads config entities from a single root directory.
type Discovery struct {
	root string
}

// New creates a Discovery for the given config root.
func New(root string) *Discovery {
	return &Discovery{root: root}
}

// Agents returns all parseable agent definitions under agents/, sorted by
// file name. A missing directory yields an empty slice.
func (d *Discovery) Agents(ctx context.Context) ([]Agent, error) {
	agentsDir := filepath.Join(d.root, "agents")
	entries, err := os.ReadDir(agentsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", agentsDir)
	}

	var agents []Agent
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(agentsDir, entry.Name())
		metadata, err := parseMeta(path)
		if err != nil {
			logger.G(ctx).WithField("agent", entry.Name()).WithError(err).Debug("Skipping unparseable agent")
			continue
		}

		agent := Agent{
			Name:        stringField(metadata, "name"),
			Description: stringField(metadata, "description"),
			Model:       stringField(metadata, "model"),
			Skills:      stringListField(metadata, "skills"),
			Path:        path,
		}
		if agent.Name == "" {
			agent.Name = strings.TrimSuffix(entry.Name(), ".md")
		}
		agents = append(agents, agent)
	}

	logger.G(ctx).WithField("count", len(agents)).Debug("Discovered agents")
	return agents, nil
}

// Skills returns all parseable skill packages under skills/, sorted by
// directory name. Directories without a SKILL.md are skipped.
func (d *Discovery) Skills(ctx context.Context) ([]Skill, error) {
	skillsDir := filepath.Join(d.root, "skills")
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", skillsDir)
	}

	var skills []Skill
	for _, entry := range entries {
		dir := filepath.Join(skillsDir, entry.Name())
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		metadata, err := parseMeta(filepath.Join(dir, skillFileName))
		if err != nil {
			logger.G(ctx).WithField("skill", entry.Name()).WithError(err).Debug("Skipping unparseable skill")
			continue
		}

		name := stringField(metadata, "name")
		if name == "" {
			name = entry.Name()
		}
		skills = append(skills, Skill{
			Name:        name,
			Description: stringField(metadata, "description"),
			Directory:   dir,
		})
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Directory < skills[j].Directory })
	logger.G(ctx).WithField("count", len(skills)).Debug("Discovered skills")
	return skills, nil
}

// Commands returns all parseable command documents under commands/,
// sorted by file name.
func (d *Discovery) Commands(ctx context.Context) ([]Command, error) {
	commandsDir := filepath.Join(d.root, "commands")
	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list %s", commandsDir)
	}

	var commands []Command
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(commandsDir, entry.Name())
		metadata, err := parseMeta(path)
		if err != nil {
			logger.G(ctx).WithField("command", entry.Name()).WithError(err).Debug("Skipping unparseable command")
			continue
		}

		commands = append(commands, Command{
			Name:        strings.TrimSuffix(entry.Name(), ".md"),
			Description: stringField(metadata, "description"),
			Path:        path,
		})
	}

	logger.G(ctx).WithField("count", len(commands)).Debug("Discovered commands")
	return commands, nil
}

// parseMeta extracts the YAML frontmatter of a markdown file via goldmark.
func parseMeta(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metadata := meta.Get(pctx)
	if metadata == nil {
		return nil, errors.New("missing frontmatter")
	}
	return metadata, nil
}

func stringField(metadata map[string]interface{}, key string) string {
	if value, ok := metadata[key].(string); ok {
		return value
	}
	return ""
}

// stringListField handles both YAML arrays and comma-separated strings,
// the two shapes the skills field appears in.
func stringListField(metadata map[string]interface{}, key string) []string {
	switch v := metadata[key].(type) {
	case []interface{}:
		var result []string
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, strings.TrimSpace(str))
			}
		}
		return result
	case string:
		var result []string
		for _, item := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	default:
		return nil
	}
}
