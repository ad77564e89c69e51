package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Repo is the change-log backend for a store directory. All operations
// are single attempts: a failed commit is reported to the caller once
// and never retried, because the log is an audit trail, not the source
// of truth.
type Repo struct {
	// Dir is the store root the repository lives in.
	Dir string

	// Enabled gates every operation; when false all methods are no-ops.
	Enabled bool
}

// Init initializes the repository if it does not exist yet. Idempotent.
func (r Repo) Init() error {
	if !r.Enabled {
		return nil
	}
	if r.isRepo() {
		return nil
	}

	if out, err := r.run("init", "-q"); err != nil {
		return fmt.Errorf("git init: %v: %s", err, out)
	}
	return nil
}

// Commit stages the given paths (including deletions) and records one
// commit with the given message.
func (r Repo) Commit(message string, paths ...string) error {
	if !r.Enabled {
		return nil
	}

	addArgs := append([]string{"add", "-A", "--"}, paths...)
	if out, err := r.run(addArgs...); err != nil {
		return fmt.Errorf("git add: %v: %s", err, out)
	}
	if out, err := r.run("commit", "-q", "-m", message); err != nil {
		return fmt.Errorf("git commit: %v: %s", err, out)
	}
	return nil
}

// isRepo reports whether Dir is already inside a git work tree.
func (r Repo) isRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = r.Dir
	return cmd.Run() == nil
}

func (r Repo) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
