package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults for generated passwords.
const (
	DefaultPasswordLength  = 50
	DefaultPasswordPattern = "A-Za-z0-9-_"
)

// Settings is the resolved configuration for one pa invocation. It is
// built once in Load and threaded explicitly through every operation;
// nothing reads ambient process state after that.
type Settings struct {
	// DataDir is the pa base directory, normally $XDG_DATA_HOME/pa.
	// It holds the key material and the telemetry log.
	DataDir string

	// StoreDir is the root of the encrypted entry tree, normally
	// <DataDir>/passwords. It is the directory the change log versions.
	StoreDir string

	// IdentitiesPath is the private-key file used for decryption.
	IdentitiesPath string

	// RecipientsPath is the public-key file entries are encrypted to.
	RecipientsPath string

	// PasswordLength is the length of generated passwords.
	PasswordLength int

	// PasswordPattern is the character class generated passwords are
	// drawn from, in regexp class syntax without the brackets.
	PasswordPattern string

	// GitEnabled controls whether mutations are committed to the
	// change log.
	GitEnabled bool
}

// Load resolves settings from defaults, the optional config file, and
// environment variables, in increasing order of precedence. The
// environment surface is PA_DIR, PA_LENGTH, PA_PATTERN, and PA_NOGIT.
func Load() (*Settings, error) {
	s := &Settings{
		PasswordLength:  DefaultPasswordLength,
		PasswordPattern: DefaultPasswordPattern,
		GitEnabled:      true,
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	s.DataDir = filepath.Join(dataDir, "pa")
	s.StoreDir = filepath.Join(s.DataDir, "passwords")

	fileConfig, err := LoadFileConfig()
	if err != nil {
		return nil, err
	}
	if fileConfig.StoreDir != "" {
		s.StoreDir = fileConfig.StoreDir
		s.DataDir = filepath.Dir(fileConfig.StoreDir)
	}
	if fileConfig.PasswordLength > 0 {
		s.PasswordLength = fileConfig.PasswordLength
	}
	if fileConfig.PasswordPattern != "" {
		s.PasswordPattern = fileConfig.PasswordPattern
	}
	if fileConfig.DisableGit {
		s.GitEnabled = false
	}

	if dir := os.Getenv("PA_DIR"); dir != "" {
		s.StoreDir = dir
		s.DataDir = filepath.Dir(dir)
	}
	if length := os.Getenv("PA_LENGTH"); length != "" {
		n, err := strconv.Atoi(length)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("PA_LENGTH must be a positive integer, got %q", length)
		}
		s.PasswordLength = n
	}
	if pattern := os.Getenv("PA_PATTERN"); pattern != "" {
		s.PasswordPattern = pattern
	}
	if os.Getenv("PA_NOGIT") != "" {
		s.GitEnabled = false
	}

	s.IdentitiesPath = filepath.Join(s.DataDir, "identities")
	s.RecipientsPath = filepath.Join(s.DataDir, "recipients")

	return s, nil
}
