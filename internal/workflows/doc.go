// Package workflows implements the entry lifecycle: Add, Edit, Delete,
// Show, and List. Each workflow is a short linear protocol over a
// validated entry name, composing the store, the encryption engine, the
// change log, and the interactive prompts its Options carry.
//
// pa assumes a single local user running one invocation at a time.
// There is no cross-process locking; two simultaneous invocations
// mutating the same entry can race.
//
// Every mutation performs its filesystem change and its change-log
// commit as two sequential steps. A crash between them leaves the store
// ahead of the log, which is acceptable: the log is an audit trail, not
// the source of truth.
package workflows
