package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conflint/conflint/pkg/checks"
	"github.com/conflint/conflint/pkg/logger"
	"github.com/conflint/conflint/pkg/presenter"
	"github.com/conflint/conflint/pkg/report"
)

// ValidateConfig holds configuration for the validate command
type ValidateConfig struct {
	Checks     string
	JSONOutput bool
}

// NewValidateConfig creates a ValidateConfig with default values
func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Checks:     "",
		JSONOutput: false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the agent configuration directory",
	Long: `Run the configuration checks against the root directory and report
errors and warnings.

Available checks: ` + strings.Join(checks.Names(), ", ") + `

Examples:
  conflint validate
  conflint validate --root ~/agent-config
  conflint validate --check agents,skills
  conflint validate --json`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		root := viper.GetString("root")

		var names []string
		if config.Checks != "" {
			for _, name := range strings.Split(config.Checks, ",") {
				names = append(names, strings.TrimSpace(name))
			}
		}

		ctx := cmd.Context()
		logger.G(ctx).WithField("root", root).WithField("checks", names).Debug("Running validation")

		summary, err := checks.Run(ctx, root, names)
		if err != nil {
			presenter.Error(err, "Validation run failed")
			os.Exit(1)
		}

		if config.JSONOutput {
			if err := report.JSON(os.Stdout, summary); err != nil {
				presenter.Error(err, "Failed to render JSON report")
				os.Exit(1)
			}
		} else {
			report.Text(os.Stdout, summary)
		}

		if summary.Counts.Errors > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().StringP("check", "c", defaults.Checks, "Comma-separated list of checks to run (default: all)")
	validateCmd.Flags().Bool("json", defaults.JSONOutput, "Output results as JSON")
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if checksFlag, err := cmd.Flags().GetString("check"); err == nil {
		config.Checks = checksFlag
	}
	if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSONOutput = jsonOutput
	}
	return config
}
