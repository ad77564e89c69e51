package secrets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeEntryFile is a helper that creates a fake encrypted entry.
func writeEntryFile(t *testing.T, store Store, name string) {
	t.Helper()
	path := store.EntryPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("Failed to create category directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("ciphertext"), 0600); err != nil {
		t.Fatalf("Failed to create entry file: %v", err)
	}
}

func TestStore_EntryPath(t *testing.T) {
	store := Store{Root: "/store"}
	got := store.EntryPath("email/work")
	want := filepath.Join("/store", "email", "work"+Ext)
	if got != want {
		t.Errorf("EntryPath = %q, want %q", got, want)
	}
}

func TestStore_Exists(t *testing.T) {
	store := Store{Root: t.TempDir()}

	if store.Exists("email/work") {
		t.Error("Exists returned true for missing entry")
	}

	writeEntryFile(t, store, "email/work")
	if !store.Exists("email/work") {
		t.Error("Exists returned false for stored entry")
	}
}

func TestStore_List(t *testing.T) {
	store := Store{Root: t.TempDir()}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty list, got %v", entries)
	}

	for _, name := range []string{"zulu", "email/work", "email/home", "bank/checking/main"} {
		writeEntryFile(t, store, name)
	}

	entries, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"bank/checking/main", "email/home", "email/work", "zulu"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("List = %v, want %v", entries, want)
	}
}

func TestStore_ListIgnoresOtherFiles(t *testing.T) {
	store := Store{Root: t.TempDir()}
	writeEntryFile(t, store, "email/work")

	// .gitattributes and similar non-entry files must not show up.
	if err := os.WriteFile(filepath.Join(store.Root, ".gitattributes"), []byte("*.age diff=age\n"), 0600); err != nil {
		t.Fatalf("Failed to write .gitattributes: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"email/work"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("List = %v, want %v", entries, want)
	}
}

func TestStore_EnsureCategory(t *testing.T) {
	store := Store{Root: t.TempDir()}

	if err := store.EnsureCategory("a/b/c"); err != nil {
		t.Fatalf("EnsureCategory: %v", err)
	}
	info, err := os.Stat(filepath.Join(store.Root, "a", "b"))
	if err != nil || !info.IsDir() {
		t.Fatalf("Category directory was not created: %v", err)
	}

	// Idempotent.
	if err := store.EnsureCategory("a/b/c"); err != nil {
		t.Errorf("EnsureCategory second call: %v", err)
	}
}

func TestStore_RemovePrunesEmptyCategories(t *testing.T) {
	store := Store{Root: t.TempDir()}
	writeEntryFile(t, store, "web/mail/account")

	if err := store.Remove("web/mail/account"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if store.Exists("web/mail/account") {
		t.Error("Entry still exists after Remove")
	}
	if _, err := os.Stat(filepath.Join(store.Root, "web")); !os.IsNotExist(err) {
		t.Error("Empty category directory was not pruned")
	}
	if _, err := os.Stat(store.Root); err != nil {
		t.Errorf("Store root must survive pruning: %v", err)
	}
}

func TestStore_RemoveKeepsOccupiedCategories(t *testing.T) {
	store := Store{Root: t.TempDir()}
	writeEntryFile(t, store, "email/work")
	writeEntryFile(t, store, "email/home")

	if err := store.Remove("email/work"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if !store.Exists("email/home") {
		t.Error("Sibling entry vanished")
	}
	if _, err := os.Stat(filepath.Join(store.Root, "email")); err != nil {
		t.Errorf("Occupied category directory was pruned: %v", err)
	}
}

func TestStore_RemoveMissing(t *testing.T) {
	store := Store{Root: t.TempDir()}
	if err := store.Remove("nope"); err == nil {
		t.Error("Remove of missing entry should fail")
	}
}
