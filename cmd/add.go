package cmd

import (
	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/ui"
	"github.com/Sjlver/pa/internal/utils"
	"github.com/Sjlver/pa/internal/workflows"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new entry, generating a password or prompting for one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}

		s, cleanup := startSpinner("Adding entry...", verbose)
		defer cleanup()

		result, err := workflows.Add(settings, workflows.AddOptions{
			Name:       args[0],
			Confirm:    pausing(s, utils.Confirm),
			ReadSecret: pausing(s, utils.ReadSecret),
		})
		if err != nil {
			return err
		}

		if result.CommitErr != nil {
			if spinnerActive() {
				s.Stop()
			}
			Logger.WarnfUser("Entry stored, but recording it in the git log failed: %v", result.CommitErr)
		}

		Logger.Infof("Add command completed for entry: %s", result.Name)
		finalMessage := ui.Success.Sprint("✓") + " Added entry " + ui.Highlight.Sprint(result.Name)
		if result.Generated {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Run " +
				ui.Code.Sprint("pa show "+result.Name) + " to see the generated password"
		}
		s.FinalMSG = finalMessage
		return nil
	},
}

// pausing wraps an interactive prompt so the spinner releases the
// terminal while the prompt runs.
func pausing[T any](s *spinner.Spinner, prompt func(string) (T, error)) func(string) (T, error) {
	return func(message string) (T, error) {
		if spinnerActive() {
			s.Stop()
		}
		value, err := prompt(message)
		if spinnerActive() {
			s.Restart()
		}
		return value, err
	}
}
