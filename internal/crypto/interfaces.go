// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic building blocks of the security
// core: the key provider capability, field-level AES-GCM encryption, the
// cipher protecting the secure preference store and PIN hashing.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

// KeyProvider holds named 256-bit AES keys and performs AES-GCM with them.
// Raw key material never leaves the provider: callers only see nonces and
// ciphertexts. Keys are created on first use.
//
// One implementation exists per platform (OS keystore, HSM); the software
// implementation in this package is a development fallback.
type KeyProvider interface {
	// Seal encrypts plaintext with the key named alias under a fresh 12-byte
	// nonce. The returned ciphertext carries the 16-byte GCM tag.
	Seal(alias string, plaintext, additionalData []byte) (nonce, ciphertext []byte, err error)

	// Open authenticates and decrypts ciphertext produced by Seal.
	Open(alias string, nonce, ciphertext, additionalData []byte) ([]byte, error)

	// DeleteKey removes the key named alias. Data sealed with it becomes
	// unrecoverable.
	DeleteKey(alias string) error
}
