package secrets

import (
	"fmt"
	"strings"
	"unicode"

	paerrors "github.com/Sjlver/pa/internal/errors"
)

// NormalizeName validates a raw entry name and returns it as a relative
// slash-separated path without extension. Control characters are
// stripped; everything else is either accepted as-is or rejected, never
// silently rewritten.
//
// Returns ErrInvalidName if the name is empty after stripping or starts
// or ends with a separator. Returns ErrPathEscapesRoot if any path
// segment is "..".
func NormalizeName(raw string) (string, error) {
	name := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)

	if name == "" {
		return "", fmt.Errorf("%w: name is empty", paerrors.ErrInvalidName)
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return "", fmt.Errorf("%w: %q must not start or end with a separator", paerrors.ErrInvalidName, name)
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", paerrors.ErrPathEscapesRoot, name)
		}
	}

	return name, nil
}
