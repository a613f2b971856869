package checks

import (
	"context"

	"github.com/conflint/conflint/pkg/logger"
)

// Counts summarizes a run: how many config entities were discovered and
// how many findings were produced.
type Counts struct {
	Agents   int `json:"agents"`
	Skills   int `json:"skills"`
	Commands int `json:"commands"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summary is the aggregate result of one validation run, in check
// execution order. It is the object rendered by both output modes.
type Summary struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Counts   Counts    `json:"counts"`
}

// Run executes the named checks against root, defaulting to all
// registered checks in their fixed order. An unknown name contributes one
// CONFIG error and does not prevent the remaining checks from running.
// The returned error is reserved for filesystem faults mid-run.
func Run(ctx context.Context, root string, names []string) (Summary, error) {
	if len(names) == 0 {
		names = Names()
	}

	summary := Summary{
		Errors:   []Finding{},
		Warnings: []Finding{},
	}

	log := logger.G(ctx).WithField("root", root)

	for _, name := range names {
		fn, ok := Lookup(name)
		if !ok {
			summary.Errors = append(summary.Errors, Finding{
				Severity: SeverityError,
				Category: CategoryConfig,
				Message:  "Unknown check: " + name,
			})
			continue
		}

		result, err := fn(root)
		if err != nil {
			return summary, err
		}

		log.WithField("check", name).
			WithField("errors", len(result.Errors)).
			WithField("warnings", len(result.Warnings)).
			Debug("Check completed")

		summary.Errors = append(summary.Errors, result.Errors...)
		summary.Warnings = append(summary.Warnings, result.Warnings...)
	}

	counts, err := countEntities(root)
	if err != nil {
		return summary, err
	}
	summary.Counts = counts
	summary.Counts.Errors = len(summary.Errors)
	summary.Counts.Warnings = len(summary.Warnings)

	return summary, nil
}

func countEntities(root string) (Counts, error) {
	var counts Counts

	agentFiles, err := globSorted(root, "agents/*.md")
	if err != nil {
		return counts, err
	}
	counts.Agents = len(agentFiles)

	skillDirs, err := skillDirNames(root)
	if err != nil {
		return counts, err
	}
	counts.Skills = len(skillDirs)

	commandFiles, err := globSorted(root, "commands/*.md")
	if err != nil {
		return counts, err
	}
	counts.Commands = len(commandFiles)

	return counts, nil
}
