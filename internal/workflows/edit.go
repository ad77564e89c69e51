package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sjlver/pa/internal/configs"
	paerrors "github.com/Sjlver/pa/internal/errors"
	"github.com/Sjlver/pa/internal/secrets"
)

// EditOutcome says how an edit ended. It is decided by a single check of
// the scratch file's existence after the editor returns.
type EditOutcome int

const (
	// EditSaved means the scratch file survived and was re-encrypted
	// back into the store.
	EditSaved EditOutcome = iota

	// EditAborted means the user deleted the scratch file during
	// editing; the store was not touched and no change was recorded.
	EditAborted
)

// EditOptions configures the edit workflow.
type EditOptions struct {
	// Name is the raw entry name from the command line.
	Name string

	// Editor runs the external editor against the scratch file and
	// returns when it exits. Its error is deliberately not consulted:
	// only the file's existence afterwards decides the outcome.
	Editor func(path string) error
}

// EditResult contains the outcome of an edit operation.
type EditResult struct {
	// Name is the validated entry name.
	Name string

	// Outcome is EditSaved or EditAborted.
	Outcome EditOutcome

	// IsNew indicates the entry did not exist before this edit.
	IsNew bool

	// CommitErr is non-nil when the change-log commit failed. The store
	// mutation stands either way.
	CommitErr error
}

// Edit decrypts an entry into a scratch file on the most private
// available ephemeral storage, runs the editor against it, and
// re-encrypts whatever remains. Editing a nonexistent entry is a
// fresh-create edit. Deleting the scratch file in the editor aborts the
// edit silently.
//
// The scratch directory is removed on every exit path; the interrupt
// handler covers signal-delivered termination.
func Edit(settings *configs.Settings, opts EditOptions) (*EditResult, error) {
	name, err := secrets.NormalizeName(opts.Name)
	if err != nil {
		return nil, err
	}

	store, repo, err := prepare(settings)
	if err != nil {
		return nil, err
	}

	isNew := !store.Exists(name)

	scratch, err := secrets.NewScratch()
	if err != nil {
		return nil, err
	}
	defer scratch.Release()

	workFile := scratch.Path(filepath.Base(name) + ".txt")
	if !isNew {
		if err := decryptToScratch(settings, store.EntryPath(name), workFile); err != nil {
			return nil, err
		}
	}

	_ = opts.Editor(workFile)

	if _, err := os.Stat(workFile); os.IsNotExist(err) {
		return &EditResult{Name: name, Outcome: EditAborted, IsNew: isNew}, nil
	}

	if err := store.EnsureCategory(name); err != nil {
		return nil, err
	}

	plaintext, err := os.Open(workFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}
	path := store.EntryPath(name)
	err = secrets.EncryptToFile(plaintext, settings.RecipientsPath, path)
	plaintext.Close()
	if err != nil {
		return nil, err
	}

	commitErr := recordChange(settings, repo, "edit", name, path)

	return &EditResult{Name: name, Outcome: EditSaved, IsNew: isNew, CommitErr: commitErr}, nil
}

// decryptToScratch writes an entry's plaintext into a fresh scratch file
// with owner-only permissions.
func decryptToScratch(settings *configs.Settings, cipherPath, workFile string) error {
	f, err := os.OpenFile(workFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDecryptFailed, err)
	}

	err = secrets.DecryptToWriter(f, cipherPath, settings.IdentitiesPath)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
