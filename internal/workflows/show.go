package workflows

import (
	"fmt"
	"io"

	"github.com/Sjlver/pa/internal/configs"
	paerrors "github.com/Sjlver/pa/internal/errors"
	"github.com/Sjlver/pa/internal/secrets"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	// Name is the raw entry name from the command line.
	Name string

	// Out receives the decrypted plaintext, normally stdout. The
	// plaintext is streamed; it never touches an intermediate file.
	Out io.Writer
}

// Show decrypts an entry directly to the output stream.
//
// Returns ErrNotFound if the entry does not exist.
func Show(settings *configs.Settings, opts ShowOptions) error {
	name, err := secrets.NormalizeName(opts.Name)
	if err != nil {
		return err
	}

	store, _, err := prepare(settings)
	if err != nil {
		return err
	}

	if !store.Exists(name) {
		return fmt.Errorf("%w: %s", paerrors.ErrNotFound, name)
	}

	return secrets.DecryptToWriter(opts.Out, store.EntryPath(name), settings.IdentitiesPath)
}
