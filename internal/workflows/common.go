package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sjlver/pa/internal/audit"
	"github.com/Sjlver/pa/internal/configs"
	"github.com/Sjlver/pa/internal/git"
	"github.com/Sjlver/pa/internal/secrets"
)

// prepare lazily bootstraps the store before an operation: the data and
// store directories, the keypair on first use, the change-log repository,
// and the .gitattributes marker. Every workflow calls it, so a fresh
// machine works with no init command.
func prepare(settings *configs.Settings) (secrets.Store, git.Repo, error) {
	store := secrets.Store{Root: settings.StoreDir}
	repo := git.Repo{Dir: settings.StoreDir, Enabled: settings.GitEnabled}

	if err := os.MkdirAll(settings.StoreDir, 0700); err != nil {
		return store, repo, fmt.Errorf("creating store directory: %w", err)
	}
	if err := secrets.EnsureIdentity(settings.IdentitiesPath, settings.RecipientsPath); err != nil {
		return store, repo, fmt.Errorf("ensuring key material: %w", err)
	}

	// The change log is best-effort from here on: a store without one
	// still works.
	if err := repo.Init(); err == nil {
		ensureGitAttributes(settings.StoreDir)
	}

	return store, repo, nil
}

// ensureGitAttributes marks encrypted entries for git's diff machinery.
func ensureGitAttributes(storeDir string) {
	path := filepath.Join(storeDir, ".gitattributes")
	if _, err := os.Stat(path); err == nil {
		return
	}
	_ = os.WriteFile(path, []byte("*"+secrets.Ext+" diff=age\n"), 0600)
}

// recordChange commits one mutating operation to the change log and
// appends a telemetry record. A failed commit never fails the operation:
// it is recorded in telemetry and returned so the command layer can warn
// the user once.
func recordChange(settings *configs.Settings, repo git.Repo, verb, name, path string) error {
	entry := audit.Entry{Operation: verb, Name: name}
	commitErr := repo.Commit(verb+" "+name, path)
	if commitErr != nil {
		entry.CommitError = commitErr.Error()
	}
	audit.Log(settings.DataDir, entry)
	return commitErr
}
