package cmd

import (
	"io"
	"os"

	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/workflows"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an entry's plaintext to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load settings: %v", err)
		}

		out := &newlineTracker{w: os.Stdout}
		if err := workflows.Show(settings, workflows.ShowOptions{
			Name: args[0],
			Out:  out,
		}); err != nil {
			return err
		}

		// The store holds exactly the bytes that were supplied; add a
		// newline at display time only when the plaintext lacks one.
		if !out.sawNewline {
			os.Stdout.Write([]byte("\n"))
		}
		return nil
	},
}

// newlineTracker remembers whether the last byte written was a newline.
type newlineTracker struct {
	w          io.Writer
	sawNewline bool
}

func (t *newlineTracker) Write(p []byte) (int, error) {
	if len(p) > 0 {
		t.sawNewline = p[len(p)-1] == '\n'
	}
	return t.w.Write(p)
}
