package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rootfind/internal/config"
	"rootfind/internal/format"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tb := format.NewTable(format.ASCII)
			tb.Header("Scenario", "Functions", "Max Iter", "Description")
			tb.Columns(format.ColumnConfig{Number: 4, MaxWidth: 60})
			for _, name := range config.ListScenarios() {
				sc, err := config.LoadScenario(name)
				if err != nil {
					return err
				}
				tb.Row(sc.Name, len(sc.Functions), sc.Tolerances.MaxIter, sc.Description)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tb.String())
			return err
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a built-in scenario as YAML, with defaults filled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(sc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return cmd
}
