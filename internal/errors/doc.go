// Package errors defines sentinel errors for pa operations.
//
// Workflows wrap these sentinels with fmt.Errorf("%w: ...") so commands
// can match them with errors.Is while still surfacing context. Every
// error is terminal for the invocation; pa performs no retries.
package errors
