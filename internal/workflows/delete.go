package workflows

import (
	"fmt"

	"github.com/Sjlver/pa/internal/configs"
	paerrors "github.com/Sjlver/pa/internal/errors"
	"github.com/Sjlver/pa/internal/secrets"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	// Name is the raw entry name from the command line.
	Name string

	// Confirm asks a yes/no question on the controlling terminal.
	Confirm func(prompt string) (bool, error)
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	// Name is the validated entry name.
	Name string

	// Deleted is false when the user answered anything but yes; that is
	// a no-op, not an error.
	Deleted bool

	// CommitErr is non-nil when the change-log commit failed. The store
	// mutation stands either way.
	CommitErr error
}

// Delete removes an entry after interactive confirmation and prunes any
// category directories the removal emptied.
//
// Returns ErrNotFound if the entry does not exist.
func Delete(settings *configs.Settings, opts DeleteOptions) (*DeleteResult, error) {
	name, err := secrets.NormalizeName(opts.Name)
	if err != nil {
		return nil, err
	}

	store, repo, err := prepare(settings)
	if err != nil {
		return nil, err
	}

	if !store.Exists(name) {
		return nil, fmt.Errorf("%w: %s", paerrors.ErrNotFound, name)
	}

	confirmed, err := opts.Confirm(fmt.Sprintf("Delete '%s'? [y/n]: ", name))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return &DeleteResult{Name: name, Deleted: false}, nil
	}

	path := store.EntryPath(name)
	if err := store.Remove(name); err != nil {
		return nil, err
	}

	commitErr := recordChange(settings, repo, "delete", name, path)

	return &DeleteResult{Name: name, Deleted: true, CommitErr: commitErr}, nil
}
