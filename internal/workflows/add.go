package workflows

import (
	"fmt"
	"strings"

	"github.com/Sjlver/pa/internal/configs"
	paerrors "github.com/Sjlver/pa/internal/errors"
	"github.com/Sjlver/pa/internal/secrets"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	// Name is the raw entry name from the command line.
	Name string

	// Confirm asks a yes/no question on the controlling terminal.
	Confirm func(prompt string) (bool, error)

	// ReadSecret reads one masked line from the controlling terminal.
	ReadSecret func(prompt string) (string, error)
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	// Name is the validated entry name.
	Name string

	// Path is the encrypted file that was created.
	Path string

	// Generated indicates the password was generated rather than typed.
	Generated bool

	// CommitErr is non-nil when the change-log commit failed. The store
	// mutation stands either way.
	CommitErr error
}

// Add creates a new entry. The password is either generated (if the user
// opts in) or read twice from the terminal. The plaintext exists only in
// process memory and is streamed straight into the encryption engine; no
// temp file is involved on this path.
//
// Returns ErrInvalidName or ErrPathEscapesRoot for a bad name.
// Returns ErrAlreadyExists if the entry is already stored.
// Returns ErrEmptyPassword or ErrPasswordMismatch for bad manual entry.
func Add(settings *configs.Settings, opts AddOptions) (*AddResult, error) {
	name, err := secrets.NormalizeName(opts.Name)
	if err != nil {
		return nil, err
	}

	store, repo, err := prepare(settings)
	if err != nil {
		return nil, err
	}

	if store.Exists(name) {
		return nil, fmt.Errorf("%w: %s", paerrors.ErrAlreadyExists, name)
	}

	generate, err := opts.Confirm("Generate a password? [y/n]: ")
	if err != nil {
		return nil, err
	}

	var password string
	if generate {
		password, err = secrets.Generate(settings.PasswordLength, settings.PasswordPattern)
		if err != nil {
			return nil, err
		}
	} else {
		password, err = opts.ReadSecret("Enter password: ")
		if err != nil {
			return nil, err
		}
		if password == "" {
			return nil, paerrors.ErrEmptyPassword
		}
		confirmed, err := opts.ReadSecret("Confirm password: ")
		if err != nil {
			return nil, err
		}
		if password != confirmed {
			return nil, paerrors.ErrPasswordMismatch
		}
	}

	if err := store.EnsureCategory(name); err != nil {
		return nil, err
	}

	path := store.EntryPath(name)
	if err := secrets.EncryptToFile(strings.NewReader(password), settings.RecipientsPath, path); err != nil {
		return nil, err
	}

	commitErr := recordChange(settings, repo, "add", name, path)

	return &AddResult{Name: name, Path: path, Generated: generate, CommitErr: commitErr}, nil
}
