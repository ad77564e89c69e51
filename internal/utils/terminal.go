package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// The terminal state saved before any mode change, so the interrupt
// handler can undo a pending raw or no-echo mode even when the signal
// lands mid-read.
var (
	termMu     sync.Mutex
	savedFd    int
	savedState *term.State
)

// ReadSecret prompts on stderr and reads a line from stdin with echo
// suppressed. The returned string never appears in argv or any file.
func ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read secret: stdin is not a terminal")
	}

	rememberState(fd)
	defer forgetState()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Newline after hidden input.
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return string(secret), nil
}

// Confirm prompts on stderr and reads a single byte in raw mode.
// Returns true only for 'y' or 'Y'; any other byte, including enter, is
// a refusal. When stdin is not a terminal it falls back to reading a
// line, so piped input still works.
func Confirm(prompt string) (bool, error) {
	fd := int(os.Stdin.Fd())
	fmt.Fprint(os.Stderr, prompt)

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		answer := strings.TrimSpace(line)
		return answer == "y" || answer == "Y", nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return false, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	rememberStateValue(fd, oldState)

	buf := make([]byte, 1)
	_, readErr := os.Stdin.Read(buf)

	restoreErr := term.Restore(fd, oldState)
	forgetState()

	if readErr != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", readErr)
	}
	if restoreErr != nil {
		return false, fmt.Errorf("failed to restore terminal: %w", restoreErr)
	}

	// Echo the answer so the user sees what they pressed.
	fmt.Fprintf(os.Stderr, "%c\n", buf[0])

	return buf[0] == 'y' || buf[0] == 'Y', nil
}

// RestoreTerminal undoes any pending terminal mode change. The interrupt
// handler calls it before re-raising the signal; when no mode change is
// pending it does nothing.
func RestoreTerminal() {
	termMu.Lock()
	defer termMu.Unlock()
	if savedState != nil {
		_ = term.Restore(savedFd, savedState)
		savedState = nil
	}
}

func rememberState(fd int) {
	state, err := term.GetState(fd)
	if err != nil {
		return
	}
	rememberStateValue(fd, state)
}

func rememberStateValue(fd int, state *term.State) {
	termMu.Lock()
	savedFd = fd
	savedState = state
	termMu.Unlock()
}

func forgetState() {
	termMu.Lock()
	savedState = nil
	termMu.Unlock()
}
