package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// scratchSuffixLength makes collision between concurrent invocations
// practically impossible: 62^10 distinct suffixes.
const scratchSuffixLength = 10

// liveScratches tracks every scratch directory that has not been
// released yet, so the interrupt handler can remove them all before the
// process dies.
var (
	scratchMu     sync.Mutex
	liveScratches = make(map[string]struct{})
)

// Scratch is a private ephemeral directory that holds plaintext for the
// duration of a single edit. It lives on a memory-backed filesystem when
// one is available, so the plaintext never has to touch persistent
// storage.
//
// Callers must defer Release; ReleaseAll covers signal-delivered
// termination.
type Scratch struct {
	dir string
}

// NewScratch creates a scratch directory named pa-<random suffix> under
// the most private writable base: /dev/shm if usable, os.TempDir()
// otherwise. The directory is created with mode 0700.
func NewScratch() (*Scratch, error) {
	suffix, err := Generate(scratchSuffixLength, "A-Za-z0-9")
	if err != nil {
		return nil, fmt.Errorf("generating scratch suffix: %w", err)
	}

	var lastErr error
	for _, base := range scratchBases() {
		dir := filepath.Join(base, "pa-"+suffix)
		if err := os.Mkdir(dir, 0700); err != nil {
			lastErr = err
			continue
		}

		scratchMu.Lock()
		liveScratches[dir] = struct{}{}
		scratchMu.Unlock()

		return &Scratch{dir: dir}, nil
	}

	return nil, fmt.Errorf("creating scratch directory: %w", lastErr)
}

// Path returns the path of a file inside the scratch directory.
func (s *Scratch) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Release removes the scratch directory and everything in it.
// Idempotent; safe to defer unconditionally.
func (s *Scratch) Release() {
	if s.dir == "" {
		return
	}

	scratchMu.Lock()
	delete(liveScratches, s.dir)
	scratchMu.Unlock()

	_ = os.RemoveAll(s.dir)
	s.dir = ""
}

// ReleaseAll removes every live scratch directory. The interrupt handler
// calls it before re-raising the signal.
func ReleaseAll() {
	scratchMu.Lock()
	dirs := make([]string, 0, len(liveScratches))
	for dir := range liveScratches {
		dirs = append(dirs, dir)
	}
	liveScratches = make(map[string]struct{})
	scratchMu.Unlock()

	for _, dir := range dirs {
		_ = os.RemoveAll(dir)
	}
}

// scratchBases returns candidate parents for scratch directories, most
// private first. /dev/shm is a tmpfs on Linux, so plaintext written
// there never reaches a disk.
func scratchBases() []string {
	var bases []string
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		bases = append(bases, "/dev/shm")
	}
	return append(bases, os.TempDir())
}
