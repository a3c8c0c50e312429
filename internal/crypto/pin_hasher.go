// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/argon2"
)

// PINHasher derives verifiers for the manual unlock PIN with Argon2id.
type PINHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPINHasher constructs a [PINHasher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPINHasher() *PINHasher {
	return &PINHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG.
func (h *PINHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Hash derives the verifier of pin with salt.
func (h *PINHasher) Hash(pin string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(pin),
		salt,
		h.argonTime,
		h.argonMemory,
		h.argonThreads,
		h.argonKeyLen,
	)
}

// Verify reports whether pin matches expected in constant time.
func (h *PINHasher) Verify(pin string, salt, expected []byte) bool {
	return subtle.ConstantTimeCompare(h.Hash(pin, salt), expected) == 1
}
