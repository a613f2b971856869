// Package report renders a validation summary for humans (grouped text
// with severity coloring) or machines (the summary object as JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/conflint/conflint/pkg/checks"
)

// JSON writes the summary object verbatim as indented JSON.
func JSON(w io.Writer, summary checks.Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return errors.Wrap(err, "failed to encode summary as JSON")
	}
	return nil
}

// Text writes the human-readable report: errors, then warnings, then the
// summary counts, then a single PASS/FAIL/WARN verdict line.
func Text(w io.Writer, summary checks.Summary) {
	titleColor := color.New(color.Bold)
	errorColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)

	titleColor.Fprintln(w, "Configuration Validation Report")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w)

	if len(summary.Errors) > 0 {
		titleColor.Fprintln(w, "Errors (must fix)")
		fmt.Fprintln(w, strings.Repeat("-", 20))
		for _, finding := range summary.Errors {
			errorColor.Fprintf(w, "  %s\n", finding)
		}
		fmt.Fprintln(w)
	}

	if len(summary.Warnings) > 0 {
		titleColor.Fprintln(w, "Warnings (should fix)")
		fmt.Fprintln(w, strings.Repeat("-", 20))
		for _, finding := range summary.Warnings {
			warnColor.Fprintf(w, "  %s\n", finding)
		}
		fmt.Fprintln(w)
	}

	titleColor.Fprintln(w, "Summary")
	fmt.Fprintln(w, strings.Repeat("-", 20))
	fmt.Fprintf(w, "  Agents:   %d\n", summary.Counts.Agents)
	fmt.Fprintf(w, "  Skills:   %d\n", summary.Counts.Skills)
	fmt.Fprintf(w, "  Commands: %d\n", summary.Counts.Commands)
	fmt.Fprintf(w, "  Errors:   %d\n", summary.Counts.Errors)
	fmt.Fprintf(w, "  Warnings: %d\n", summary.Counts.Warnings)
	fmt.Fprintln(w)

	switch {
	case summary.Counts.Errors == 0 && summary.Counts.Warnings == 0:
		color.New(color.FgGreen, color.Bold).Fprintln(w, "PASS")
	case summary.Counts.Errors > 0:
		color.New(color.FgRed, color.Bold).Fprintf(w, "FAIL: %d error(s)\n", summary.Counts.Errors)
	default:
		color.New(color.FgYellow, color.Bold).Fprintf(w, "WARN: %d warning(s)\n", summary.Counts.Warnings)
	}
}
