// Package git records store mutations in a git repository by shelling
// out to the git binary. It is a best-effort collaborator: pa treats
// the change log as a convenience, so failures here never roll back a
// store mutation. They are surfaced once and logged to telemetry.
package git
