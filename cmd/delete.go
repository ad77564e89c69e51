package cmd

import (
	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/ui"
	"github.com/Sjlver/pa/internal/utils"
	"github.com/Sjlver/pa/internal/workflows"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an entry after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}

		s, cleanup := startSpinner("Deleting entry...", verbose)
		defer cleanup()

		result, err := workflows.Delete(settings, workflows.DeleteOptions{
			Name:    args[0],
			Confirm: pausing(s, utils.Confirm),
		})
		if err != nil {
			return err
		}

		if !result.Deleted {
			Logger.Infof("Delete of %s declined by user", result.Name)
			s.FinalMSG = "Kept entry " + ui.Highlight.Sprint(result.Name)
			return nil
		}

		if result.CommitErr != nil {
			if spinnerActive() {
				s.Stop()
			}
			Logger.WarnfUser("Entry deleted, but recording it in the git log failed: %v", result.CommitErr)
		}

		Logger.Infof("Delete command completed for entry: %s", result.Name)
		s.FinalMSG = ui.Success.Sprint("✓") + " Deleted entry " + ui.Highlight.Sprint(result.Name)
		return nil
	},
}
