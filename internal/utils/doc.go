// Package utils provides terminal interaction for pa: echo-suppressed
// secret entry, raw-mode single-byte confirmation, and the terminal
// state restoration hook used by the interrupt handler.
package utils
