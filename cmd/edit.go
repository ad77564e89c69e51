package cmd

import (
	"os"
	"os/exec"
	"strings"

	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/ui"
	"github.com/Sjlver/pa/internal/workflows"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an entry with $EDITOR (delete the file to abort)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}

		// No spinner here: the editor owns the terminal.
		result, err := workflows.Edit(settings, workflows.EditOptions{
			Name:   args[0],
			Editor: runEditor,
		})
		if err != nil {
			return err
		}

		if result.Outcome == workflows.EditAborted {
			// Abort-by-deletion is a silent no-op.
			Logger.Infof("Edit of %s aborted, store untouched", result.Name)
			return nil
		}

		if result.CommitErr != nil {
			Logger.WarnfUser("Entry saved, but recording it in the git log failed: %v", result.CommitErr)
		}

		Logger.Infof("Edit command completed for entry: %s", result.Name)
		if result.IsNew {
			cmd.Println(ui.Success.Sprint("✓") + " Saved entry " + ui.Highlight.Sprint(result.Name))
		}
		return nil
	},
}

// runEditor invokes $EDITOR (default vi) with the scratch file path as
// its single extra argument, attached to the controlling terminal.
func runEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	// $EDITOR may carry arguments, e.g. "code --wait".
	fields := strings.Fields(editor)
	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
