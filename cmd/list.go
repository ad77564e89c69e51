package cmd

import (
	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}

		result, err := workflows.List(settings)
		if err != nil {
			return err
		}

		for _, name := range result.Entries {
			cmd.Println(name)
		}
		return nil
	},
}
