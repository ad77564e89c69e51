package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry represents a single telemetry record for a mutating operation.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // "add", "edit", or "delete".
	Name      string `json:"name"`

	// CommitError carries the change-log failure, if any. The store
	// mutation stands either way; this field is how an absorbed commit
	// failure stays observable.
	CommitError string `json:"commit_error,omitempty"`
}

// LogPath returns the path of the telemetry log inside a pa data
// directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "audit.jsonl")
}

// Log appends an entry to the telemetry log. If logging fails, the
// entry is dropped: operations must not fail because telemetry did.
func Log(dataDir string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	f, err := os.OpenFile(LogPath(dataDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the telemetry log. Returns nil if
// the log does not exist.
func ReadEntries(dataDir string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(dataDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into telemetry entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
