package errors

import "errors"

// Name errors indicate a user-supplied entry name could not be accepted.
var (
	// ErrInvalidName indicates the entry name is empty or malformed.
	ErrInvalidName = errors.New("invalid entry name")

	// ErrPathEscapesRoot indicates the entry name would escape the store root.
	ErrPathEscapesRoot = errors.New("entry name escapes the store root")
)

// Entry state errors indicate an operation's existence precondition failed.
var (
	// ErrAlreadyExists indicates an entry with this name is already stored.
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrNotFound indicates no entry with this name is stored.
	ErrNotFound = errors.New("entry not found")
)

// Input errors indicate interactive secret entry failed.
var (
	// ErrEmptyPassword indicates the user entered an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordMismatch indicates the two password entries did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Cryptographic errors indicate failures in the encryption engine.
var (
	// ErrEncryptFailed indicates entry encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt entry")

	// ErrDecryptFailed indicates entry decryption failed.
	ErrDecryptFailed = errors.New("failed to decrypt entry")
)

// Store errors indicate filesystem-level failures in the store tree.
var (
	// ErrDirectoryCreateFailed indicates a category directory could not be created.
	ErrDirectoryCreateFailed = errors.New("failed to create category directory")
)

// Randomness errors indicate the password generator could not complete.
var (
	// ErrEntropyUnavailable indicates the OS entropy source could not be read.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrGenerationFailed indicates a random string could not be produced.
	ErrGenerationFailed = errors.New("failed to generate random string")
)
