package main

import (
	"github.com/spf13/cobra"
)

const appName = "pizzeria"

// nolint: gochecknoglobals
// rootCmd runs the fixed demo sequence; it takes no flags and no arguments.
var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Order a cheese and a Braccio di Ferro pizza from the NY and Moscow stores",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		return runDemo(conf, cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
