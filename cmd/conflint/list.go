package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conflint/conflint/pkg/discovery"
	"github.com/conflint/conflint/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered configuration entities",
	Long:  `List the agents, skills, and commands discovered under the config root.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var listAgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List discovered agents",
	Run: func(cmd *cobra.Command, _ []string) {
		d := discovery.New(viper.GetString("root"))
		agents, err := d.Agents(cmd.Context())
		if err != nil {
			presenter.Error(err, "Failed to discover agents")
			os.Exit(1)
		}
		if len(agents) == 0 {
			presenter.Info("No agents found")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tMODEL\tSKILLS\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t-----\t------\t-----------")
		for _, agent := range agents {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				agent.Name, agent.Model, strings.Join(agent.Skills, ","), truncate(agent.Description, 60))
		}
		tw.Flush()
	},
}

var listSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List discovered skills",
	Run: func(cmd *cobra.Command, _ []string) {
		d := discovery.New(viper.GetString("root"))
		skills, err := d.Skills(cmd.Context())
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}
		if len(skills) == 0 {
			presenter.Info("No skills found")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t---------\t-----------")
		for _, skill := range skills {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, truncate(skill.Description, 60))
		}
		tw.Flush()
	},
}

var listCommandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List discovered commands",
	Run: func(cmd *cobra.Command, _ []string) {
		d := discovery.New(viper.GetString("root"))
		commands, err := d.Commands(cmd.Context())
		if err != nil {
			presenter.Error(err, "Failed to discover commands")
			os.Exit(1)
		}
		if len(commands) == 0 {
			presenter.Info("No commands found")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDESCRIPTION")
		fmt.Fprintln(tw, "----\t-----------")
		for _, command := range commands {
			fmt.Fprintf(tw, "%s\t%s\n", command.Name, truncate(command.Description, 60))
		}
		tw.Flush()
	},
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func init() {
	listCmd.AddCommand(listAgentsCmd)
	listCmd.AddCommand(listSkillsCmd)
	listCmd.AddCommand(listCommandsCmd)
}
