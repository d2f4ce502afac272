// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"bookswap/config"
	"bookswap/internal/domain/service"
)

const (
	defaultMemoryKB    uint32 = 64 * 1024
	defaultTimeCost    uint32 = 1
	defaultParallelism uint8  = 4
	saltLength                = 16
	keyLength          uint32 = 32
	algorithmID               = "argon2id"
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id with PHC-encoded output. Each hash carries its own random
// salt and parameters, so verification never depends on current configuration.
type argon2Hasher struct {
	memory      uint32
	time        uint32
	parallelism uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memory:      defaultMemoryKB,
		time:        defaultTimeCost,
		parallelism: defaultParallelism,
	}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Memory > 0 {
			h.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Time > 0 {
			h.time = cfg.Auth.Argon2Time
		}
		if cfg.Auth.Argon2Parallelism > 0 {
			h.parallelism = cfg.Auth.Argon2Parallelism
		}
	}

	return h
}

// Hash generates a salted, memory-hard hash from a plaintext password.
// The salt is drawn fresh per call, so hashing the same password twice
// yields two different blobs.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.parallelism, keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.memory,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify compares a plaintext password with a stored PHC blob.
// The recomputed key is compared in constant time. A malformed blob verifies
// as false; callers cannot tell a mismatch from a corrupt hash.
func (h *argon2Hasher) Verify(password, encodedHash string) bool {
	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey(
		[]byte(password),
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		uint32(len(parsed.hash)),
	)

	return subtle.ConstantTimeCompare(computed, parsed.hash) == 1
}

type parsedPHC struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

// parsePHC decodes a "$argon2id$v=19$m=..,t=..,p=..$salt$hash" blob.
func parsePHC(encodedHash string) (*parsedPHC, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("invalid PHC format")
	}

	if parts[1] != algorithmID {
		return nil, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	if !strings.HasPrefix(parts[2], "v=") {
		return nil, fmt.Errorf("missing argon2 version")
	}
	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return nil, fmt.Errorf("unsupported argon2 version")
	}

	parsed := &parsedPHC{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &parsed.memory, &parsed.time, &parsed.parallelism); err != nil {
		return nil, fmt.Errorf("invalid argon2 parameters: %w", err)
	}
	if parsed.memory == 0 || parsed.time == 0 || parsed.parallelism == 0 {
		return nil, fmt.Errorf("invalid argon2 parameters")
	}

	parsed.salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(parsed.salt) == 0 {
		return nil, fmt.Errorf("invalid salt encoding")
	}

	parsed.hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(parsed.hash) == 0 {
		return nil, fmt.Errorf("invalid hash encoding")
	}

	return parsed, nil
}
