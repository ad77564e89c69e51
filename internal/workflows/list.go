package workflows

import (
	"github.com/Sjlver/pa/internal/configs"
)

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Entries holds all stored entry names in sorted order.
	Entries []string
}

// List enumerates every stored entry. Pure read; no change is recorded.
func List(settings *configs.Settings) (*ListResult, error) {
	store, _, err := prepare(settings)
	if err != nil {
		return nil, err
	}

	entries, err := store.List()
	if err != nil {
		return nil, err
	}

	return &ListResult{Entries: entries}, nil
}
