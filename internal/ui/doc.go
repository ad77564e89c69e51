// Package ui provides semantic text formatting for pa's terminal output.
//
// Formatters degrade gracefully when color is unavailable (NO_COLOR,
// dumb terminals, redirected output): some substitute plain-text
// decoration such as quotes or backticks, others pass text through.
package ui
