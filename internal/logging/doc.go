// Package logger provides leveled, colored logging for pa commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown. Commands
// create a Logger in the root command's PersistentPreRun and pass it to
// internal functions.
package logger
