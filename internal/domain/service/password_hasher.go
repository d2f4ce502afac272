// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, memory-hard hash from a plaintext password.
	// Two calls on the same plaintext yield different blobs.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a stored hash blob in constant
	// time. A malformed blob verifies as false; callers cannot distinguish a
	// mismatch from a corrupt hash.
	Verify(password, hash string) bool
}
