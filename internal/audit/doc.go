// Package audit appends a JSON Lines telemetry record for every
// mutating operation to <dataDir>/audit.jsonl. The log lives next to
// the key material, outside the versioned store tree, and never
// contains secret data, only verbs, entry names, and timestamps.
package audit
