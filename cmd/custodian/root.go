package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the custodian CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custodian",
		Short: "Custodian - track which owner holds which item",
		Long: `Custodian keeps owners and items, assigns items to owners while
tracking their condition, and records every assignment and repair in the
item's history. State is kept in two documents on a pluggable backend.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("custodian %s (commit: %s, built: %s)\n", version, commit, date)
			return nil
		},
	}
}
