package workflows

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	"github.com/Sjlver/pa/internal/audit"
	"github.com/Sjlver/pa/internal/configs"
	paerrors "github.com/Sjlver/pa/internal/errors"
)

// testSettings builds settings rooted in a temp dir, with git disabled
// so tests stay hermetic.
func testSettings(t *testing.T) *configs.Settings {
	t.Helper()
	dataDir := t.TempDir()
	return &configs.Settings{
		DataDir:         dataDir,
		StoreDir:        filepath.Join(dataDir, "passwords"),
		IdentitiesPath:  filepath.Join(dataDir, "identities"),
		RecipientsPath:  filepath.Join(dataDir, "recipients"),
		PasswordLength:  20,
		PasswordPattern: configs.DefaultPasswordPattern,
		GitEnabled:      false,
	}
}

func answerYes(string) (bool, error) { return true, nil }
func answerNo(string) (bool, error)  { return false, nil }

// typedSecret returns a ReadSecret stub that replays the given answers.
func typedSecret(t *testing.T, answers ...string) func(string) (string, error) {
	t.Helper()
	i := 0
	return func(string) (string, error) {
		if i >= len(answers) {
			t.Fatal("ReadSecret called more times than expected")
		}
		answer := answers[i]
		i++
		return answer, nil
	}
}

// addEntry is a helper that stores a typed password under name.
func addEntry(t *testing.T, settings *configs.Settings, name, password string) {
	t.Helper()
	_, err := Add(settings, AddOptions{
		Name:       name,
		Confirm:    answerNo,
		ReadSecret: typedSecret(t, password, password),
	})
	if err != nil {
		t.Fatalf("Add(%q): %v", name, err)
	}
}

// showEntry is a helper that decrypts an entry into a string.
func showEntry(t *testing.T, settings *configs.Settings, name string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Show(settings, ShowOptions{Name: name, Out: &out}); err != nil {
		t.Fatalf("Show(%q): %v", name, err)
	}
	return out.String()
}

func TestAddShow_RoundTrip(t *testing.T) {
	settings := testSettings(t)

	addEntry(t, settings, "email/work", "hunter2")

	if got := showEntry(t, settings, "email/work"); got != "hunter2" {
		t.Errorf("Show = %q, want %q", got, "hunter2")
	}

	result, err := List(settings)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"email/work"}
	if !reflect.DeepEqual(result.Entries, want) {
		t.Errorf("List = %v, want %v", result.Entries, want)
	}
}

func TestAdd_Generated(t *testing.T) {
	settings := testSettings(t)

	result, err := Add(settings, AddOptions{
		Name:    "generated",
		Confirm: answerYes,
		ReadSecret: func(string) (string, error) {
			t.Fatal("ReadSecret must not be called when generating")
			return "", nil
		},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !result.Generated {
		t.Error("Result does not report a generated password")
	}

	got := showEntry(t, settings, "generated")
	if len(got) != settings.PasswordLength {
		t.Errorf("Generated password length = %d, want %d", len(got), settings.PasswordLength)
	}
	class := regexp.MustCompile("^[" + settings.PasswordPattern + "]+$")
	if !class.MatchString(got) {
		t.Errorf("Generated password %q leaves the configured class", got)
	}
}

func TestAdd_ExistingFails(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "a", "first")

	_, err := Add(settings, AddOptions{
		Name:       "a",
		Confirm:    answerNo,
		ReadSecret: typedSecret(t, "second", "second"),
	})
	if !errors.Is(err, paerrors.ErrAlreadyExists) {
		t.Fatalf("Second add = %v, want ErrAlreadyExists", err)
	}

	// The store must be unchanged.
	if got := showEntry(t, settings, "a"); got != "first" {
		t.Errorf("Entry changed by failed add: %q", got)
	}
}

func TestAdd_EmptyPassword(t *testing.T) {
	settings := testSettings(t)

	_, err := Add(settings, AddOptions{
		Name:       "empty",
		Confirm:    answerNo,
		ReadSecret: typedSecret(t, ""),
	})
	if !errors.Is(err, paerrors.ErrEmptyPassword) {
		t.Errorf("Add with empty password = %v, want ErrEmptyPassword", err)
	}
}

func TestAdd_Mismatch(t *testing.T) {
	settings := testSettings(t)

	_, err := Add(settings, AddOptions{
		Name:       "mismatch",
		Confirm:    answerNo,
		ReadSecret: typedSecret(t, "one", "two"),
	})
	if !errors.Is(err, paerrors.ErrPasswordMismatch) {
		t.Errorf("Add with mismatched passwords = %v, want ErrPasswordMismatch", err)
	}
	if _, err := os.Stat(filepath.Join(settings.StoreDir, "mismatch.age")); !os.IsNotExist(err) {
		t.Error("Failed add left an entry behind")
	}
}

func TestAdd_InvalidName(t *testing.T) {
	settings := testSettings(t)

	_, err := Add(settings, AddOptions{Name: "../escape", Confirm: answerYes})
	if !errors.Is(err, paerrors.ErrPathEscapesRoot) {
		t.Errorf("Add with escaping name = %v, want ErrPathEscapesRoot", err)
	}
}

func TestAdd_RecordsTelemetry(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "email/work", "hunter2")

	entries, err := audit.ReadEntries(settings.DataDir)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 telemetry entry, got %d", len(entries))
	}
	if entries[0].Operation != "add" || entries[0].Name != "email/work" {
		t.Errorf("Unexpected telemetry entry: %+v", entries[0])
	}
}

func TestAdd_CommitFailureIsSurfaced(t *testing.T) {
	settings := testSettings(t)
	settings.GitEnabled = true
	// With an empty PATH every git invocation fails.
	t.Setenv("PATH", "")

	result, err := Add(settings, AddOptions{
		Name:       "entry",
		Confirm:    answerNo,
		ReadSecret: typedSecret(t, "pw", "pw"),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if result.CommitErr == nil {
		t.Fatal("Failed commit was not surfaced in the result")
	}

	// The store mutation stands regardless.
	if got := showEntry(t, settings, "entry"); got != "pw" {
		t.Errorf("Show = %q, want %q", got, "pw")
	}

	entries, err := audit.ReadEntries(settings.DataDir)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 telemetry entry, got %d", len(entries))
	}
	if entries[0].CommitError == "" {
		t.Error("Failed commit missing from telemetry")
	}
}

func TestDelete_Confirmed(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "web/mail/account", "pw")

	result, err := Delete(settings, DeleteOptions{Name: "web/mail/account", Confirm: answerYes})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !result.Deleted {
		t.Fatal("Delete did not report deletion")
	}

	list, err := List(settings)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Entries) != 0 {
		t.Errorf("List after delete = %v, want empty", list.Entries)
	}

	// Empty category directories are pruned; the root survives.
	if _, err := os.Stat(filepath.Join(settings.StoreDir, "web")); !os.IsNotExist(err) {
		t.Error("Empty category directory was not pruned")
	}
	if _, err := os.Stat(settings.StoreDir); err != nil {
		t.Errorf("Store root missing after prune: %v", err)
	}
}

func TestDelete_Declined(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "keep", "pw")

	result, err := Delete(settings, DeleteOptions{Name: "keep", Confirm: answerNo})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if result.Deleted {
		t.Error("Declined delete still removed the entry")
	}
	if got := showEntry(t, settings, "keep"); got != "pw" {
		t.Errorf("Entry damaged by declined delete: %q", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	settings := testSettings(t)

	_, err := Delete(settings, DeleteOptions{Name: "ghost", Confirm: answerYes})
	if !errors.Is(err, paerrors.ErrNotFound) {
		t.Errorf("Delete of missing entry = %v, want ErrNotFound", err)
	}
}

func TestShow_NotFound(t *testing.T) {
	settings := testSettings(t)

	var out bytes.Buffer
	err := Show(settings, ShowOptions{Name: "ghost", Out: &out})
	if !errors.Is(err, paerrors.ErrNotFound) {
		t.Errorf("Show of missing entry = %v, want ErrNotFound", err)
	}
	if out.Len() != 0 {
		t.Error("Show wrote output for a missing entry")
	}
}

func TestEdit_CreatesNewEntry(t *testing.T) {
	settings := testSettings(t)

	result, err := Edit(settings, EditOptions{
		Name: "notes/new",
		Editor: func(path string) error {
			return os.WriteFile(path, []byte("fresh secret\n"), 0600)
		},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if result.Outcome != EditSaved || !result.IsNew {
		t.Errorf("Edit result = %+v, want saved and new", result)
	}

	if got := showEntry(t, settings, "notes/new"); got != "fresh secret\n" {
		t.Errorf("Show after edit = %q", got)
	}
}

func TestEdit_ExistingEntry(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "notes/todo", "original")

	result, err := Edit(settings, EditOptions{
		Name: "notes/todo",
		Editor: func(path string) error {
			// The editor sees the decrypted plaintext.
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if string(data) != "original" {
				t.Errorf("Editor saw %q, want %q", data, "original")
			}
			return os.WriteFile(path, []byte("updated"), 0600)
		},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if result.Outcome != EditSaved || result.IsNew {
		t.Errorf("Edit result = %+v, want saved and not new", result)
	}

	if got := showEntry(t, settings, "notes/todo"); got != "updated" {
		t.Errorf("Show after edit = %q, want %q", got, "updated")
	}
}

func TestEdit_AbortByDeletion(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "notes/keep", "original")

	result, err := Edit(settings, EditOptions{
		Name:   "notes/keep",
		Editor: os.Remove,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if result.Outcome != EditAborted {
		t.Error("Deleting the scratch file must abort the edit")
	}

	// No mutation, no change record.
	if got := showEntry(t, settings, "notes/keep"); got != "original" {
		t.Errorf("Aborted edit changed the entry: %q", got)
	}
	entries, err := audit.ReadEntries(settings.DataDir)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	for _, entry := range entries {
		if entry.Operation == "edit" {
			t.Errorf("Aborted edit recorded a change: %+v", entry)
		}
	}
}

func TestEdit_AbortedNewEntryLeavesNothing(t *testing.T) {
	settings := testSettings(t)

	result, err := Edit(settings, EditOptions{
		Name: "never/created",
		Editor: func(path string) error {
			// The user quits without writing anything.
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if result.Outcome != EditAborted {
		t.Error("Edit of a new entry with no file written must abort")
	}

	list, err := List(settings)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Entries) != 0 {
		t.Errorf("Aborted fresh-create edit stored entries: %v", list.Entries)
	}
}

func TestEdit_ScratchIsAlwaysRemoved(t *testing.T) {
	settings := testSettings(t)
	addEntry(t, settings, "notes/todo", "original")

	var scratchDir string
	_, err := Edit(settings, EditOptions{
		Name: "notes/todo",
		Editor: func(path string) error {
			scratchDir = filepath.Dir(path)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if scratchDir == "" {
		t.Fatal("Editor was never invoked")
	}
	if _, err := os.Stat(scratchDir); !os.IsNotExist(err) {
		t.Errorf("Scratch directory %q survived the edit", scratchDir)
	}
}
