package secrets

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"filippo.io/age"
)

// EnsureIdentity lazily creates the key material on first use. If the
// identities file is missing, a fresh X25519 keypair is generated and
// both files are written. If only the recipients file is missing, it is
// re-derived from the existing identity. Both files are created with
// mode 0600 and live outside the versioned tree.
func EnsureIdentity(identitiesPath, recipientsPath string) error {
	if _, err := os.Stat(identitiesPath); os.IsNotExist(err) {
		identity, err := age.GenerateX25519Identity()
		if err != nil {
			return fmt.Errorf("generating identity: %w", err)
		}

		contents := fmt.Sprintf("# created: %s\n%s\n",
			time.Now().UTC().Format(time.RFC3339), identity.String())
		if err := os.WriteFile(identitiesPath, []byte(contents), 0600); err != nil {
			return fmt.Errorf("writing identities file: %w", err)
		}

		return writeRecipients(recipientsPath, identity.Recipient().String())
	}

	if _, err := os.Stat(recipientsPath); os.IsNotExist(err) {
		identity, err := firstIdentity(identitiesPath)
		if err != nil {
			return err
		}
		return writeRecipients(recipientsPath, identity.Recipient().String())
	}

	return nil
}

func writeRecipients(path, publicKey string) error {
	if err := os.WriteFile(path, []byte(publicKey+"\n"), 0600); err != nil {
		return fmt.Errorf("writing recipients file: %w", err)
	}
	return nil
}

// firstIdentity returns the first X25519 identity in the identities
// file. Used only to derive the recipients file, which needs the
// concrete key type; decryption goes through age.ParseIdentities and
// accepts every identity in the file.
func firstIdentity(path string) (*age.X25519Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening identities file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identity, err := age.ParseX25519Identity(line)
		if err != nil {
			return nil, fmt.Errorf("parsing identity: %w", err)
		}
		return identity, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading identities file: %w", err)
	}

	return nil, fmt.Errorf("no identity found in %s", path)
}
