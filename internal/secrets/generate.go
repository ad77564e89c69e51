package secrets

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"

	paerrors "github.com/Sjlver/pa/internal/errors"
)

// The single over-read pass is sized so the expected number of accepted
// characters is overreadMultiple*length + overreadFloor. The floor keeps
// short requests safe even for a class that accepts a single byte value.
const (
	overreadMultiple = 4
	overreadFloor    = 32
)

// Generate returns a string of exactly length characters, each drawn
// from the given character class (regexp class syntax without the
// brackets, e.g. "A-Za-z0-9-_").
//
// The amount of entropy read is scaled to the class density: a class
// accepting 10 of the 256 byte values draws proportionally more bytes
// than the default alphanumeric class, so one pass suffices no matter
// how narrow the class is. Bytes come from crypto/rand, which on Linux
// is the urandom pool: it never blocks once the kernel is seeded.
// Returns ErrEntropyUnavailable if the source cannot be read and
// ErrGenerationFailed if the length is not positive or the class is
// invalid, accepts no byte value, or still fell short after one pass.
func Generate(length int, pattern string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", paerrors.ErrGenerationFailed, length)
	}

	class, err := regexp.Compile("^[" + pattern + "]$")
	if err != nil {
		return "", fmt.Errorf("%w: invalid character class %q: %v", paerrors.ErrGenerationFailed, pattern, err)
	}

	accepted := 0
	for b := 0; b < 256; b++ {
		if class.Match([]byte{byte(b)}) {
			accepted++
		}
	}
	if accepted == 0 {
		return "", fmt.Errorf("%w: class %q accepts no characters", paerrors.ErrGenerationFailed, pattern)
	}

	raw := make([]byte, (overreadMultiple*length+overreadFloor)*256/accepted)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("%w: %v", paerrors.ErrEntropyUnavailable, err)
	}

	out := make([]byte, 0, length)
	for _, b := range raw {
		if class.Match([]byte{b}) {
			out = append(out, b)
			if len(out) == length {
				return string(out), nil
			}
		}
	}

	return "", fmt.Errorf("%w: class %q accepted only %d of %d characters",
		paerrors.ErrGenerationFailed, pattern, len(out), length)
}
