package secrets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"

	paerrors "github.com/Sjlver/pa/internal/errors"
)

// EncryptToFile encrypts plaintext to every recipient listed in the
// recipients file and writes the ciphertext to outPath (mode 0600). The
// ciphertext is staged in a temporary file in the same directory and
// renamed over outPath only once it is complete, so a failure mid-write
// never destroys a previous version of the entry. The plaintext is
// consumed as a stream, so in-memory secrets never need an intermediate
// file.
func EncryptToFile(plaintext io.Reader, recipientsPath, outPath string) error {
	recipients, err := loadRecipients(recipientsPath)
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}

	out, err := os.CreateTemp(filepath.Dir(outPath), filepath.Base(outPath)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}
	tmpPath := out.Name()
	fail := func(err error) error {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}

	w, err := age.Encrypt(out, recipients...)
	if err != nil {
		return fail(err)
	}
	if _, err := io.Copy(w, plaintext); err != nil {
		return fail(err)
	}
	if err := w.Close(); err != nil {
		return fail(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", paerrors.ErrEncryptFailed, err)
	}

	return nil
}

// DecryptToWriter decrypts the entry file at cipherPath with the
// identities file and streams the plaintext to out. Nothing is buffered
// on disk; for show, out is the process's stdout.
func DecryptToWriter(out io.Writer, cipherPath, identitiesPath string) error {
	identities, err := loadIdentities(identitiesPath)
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDecryptFailed, err)
	}

	in, err := os.Open(cipherPath)
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDecryptFailed, err)
	}
	defer in.Close()

	r, err := age.Decrypt(in, identities...)
	if err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDecryptFailed, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("%w: %v", paerrors.ErrDecryptFailed, err)
	}

	return nil
}

// loadRecipients parses an age recipients file: one public key per line,
// blank lines and #-comments ignored.
func loadRecipients(path string) ([]age.Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recipients file: %w", err)
	}
	defer f.Close()

	var recipients []age.Recipient
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		recipient, err := age.ParseX25519Recipient(line)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient %q: %w", line, err)
		}
		recipients = append(recipients, recipient)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading recipients file: %w", err)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients in %s", path)
	}

	return recipients, nil
}

// loadIdentities parses an age identities file.
func loadIdentities(path string) ([]age.Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening identities file: %w", err)
	}
	defer f.Close()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("parsing identities file: %w", err)
	}

	return identities, nil
}
