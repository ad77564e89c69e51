// Package configs resolves pa's configuration.
//
// Settings are resolved once per invocation from three layers, in
// increasing order of precedence:
//
//  1. built-in defaults ($XDG_DATA_HOME/pa, length 50, alphanumeric
//     plus -_ pattern, git enabled)
//  2. the optional TOML config file at $XDG_CONFIG_HOME/pa/config.toml
//  3. the PA_DIR, PA_LENGTH, PA_PATTERN, and PA_NOGIT environment
//     variables
//
// The resolved Settings value is passed explicitly to every operation;
// there is no package-level mutable state.
package configs
