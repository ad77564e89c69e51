// Package secrets implements the building blocks of the password store:
// entry-name validation, the encrypted-file store tree, age encryption
// and key management, constrained random-string generation, and
// ephemeral plaintext scratch space.
//
// The store tree is the only index. An entry named "email/work" is
// exactly the file <root>/email/work.age; categories are plain
// directories with no metadata of their own.
package secrets
