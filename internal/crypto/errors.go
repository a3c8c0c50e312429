// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKeyAlias is returned for aliases that are empty or contain
	// characters other than letters, digits, '-' and '_'.
	ErrInvalidKeyAlias = errors.New("invalid key alias")

	// ErrCorruptedKey is returned when a stored key has the wrong length.
	ErrCorruptedKey = errors.New("stored key is corrupted")

	// ErrInvalidNonce is returned when a nonce has the wrong length.
	ErrInvalidNonce = errors.New("invalid nonce length")

	// ErrCiphertextTooShort is returned when a blob cannot hold a nonce and
	// a GCM tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrNameMismatch is returned when a decrypted preference name does not
	// match its synthetic nonce.
	ErrNameMismatch = errors.New("preference name does not match its nonce")

	// ErrInvalidKeyset is returned when the preference keyset has the wrong
	// length.
	ErrInvalidKeyset = errors.New("invalid preference keyset")
)
