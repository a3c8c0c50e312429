// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// PreferenceKeysetSize is the length of the secret a [PreferenceCipher] is
// derived from.
const PreferenceKeysetSize = 64

const (
	infoNameEncryption  = "welltrack/prefs/name-enc/v1"
	infoNameSynthIV     = "welltrack/prefs/name-iv/v1"
	infoValueEncryption = "welltrack/prefs/value-enc/v1"
)

// PreferenceCipher protects both names and values of the secure preference
// store. Names are encrypted deterministically (AES-GCM with a synthetic
// nonce HMAC-SHA256(name)[:12]) so that equal names give equal ciphertexts;
// values use AES-GCM with a random nonce and the encrypted name as
// associated data, which binds every value to its key.
type PreferenceCipher struct {
	nameAEAD  cipher.AEAD
	nameIVKey []byte
	valueAEAD cipher.AEAD
}

// NewPreferenceKeyset returns fresh random keyset material.
func NewPreferenceKeyset() ([]byte, error) {
	keyset := make([]byte, PreferenceKeysetSize)
	if _, err := io.ReadFull(rand.Reader, keyset); err != nil {
		return nil, fmt.Errorf("generate keyset: %w", err)
	}
	return keyset, nil
}

// NewPreferenceCipher derives the name and value subkeys from keyset with
// HKDF-SHA256.
func NewPreferenceCipher(keyset []byte) (*PreferenceCipher, error) {
	if len(keyset) != PreferenceKeysetSize {
		return nil, ErrInvalidKeyset
	}

	nameKey, err := deriveKey(keyset, infoNameEncryption)
	if err != nil {
		return nil, err
	}
	nameIVKey, err := deriveKey(keyset, infoNameSynthIV)
	if err != nil {
		return nil, err
	}
	valueKey, err := deriveKey(keyset, infoValueEncryption)
	if err != nil {
		return nil, err
	}

	nameAEAD, err := newGCM(nameKey)
	if err != nil {
		return nil, err
	}
	valueAEAD, err := newGCM(valueKey)
	if err != nil {
		return nil, err
	}

	return &PreferenceCipher{nameAEAD: nameAEAD, nameIVKey: nameIVKey, valueAEAD: valueAEAD}, nil
}

// EncryptName returns synthetic nonce || ciphertext. The result is the same
// for the same name.
func (c *PreferenceCipher) EncryptName(name string) []byte {
	iv := c.syntheticIV(name)
	return c.nameAEAD.Seal(iv, iv, []byte(name), nil)
}

// DecryptName reverses EncryptName and checks the synthetic nonce.
func (c *PreferenceCipher) DecryptName(blob []byte) (string, error) {
	if len(blob) < NonceSize+TagSize {
		return "", ErrCiphertextTooShort
	}

	iv, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := c.nameAEAD.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt name: %w", err)
	}

	name := string(plaintext)
	if subtle.ConstantTimeCompare(iv, c.syntheticIV(name)) != 1 {
		return "", ErrNameMismatch
	}

	return name, nil
}

// EncryptValue returns nonce || ciphertext of value bound to encryptedName.
func (c *PreferenceCipher) EncryptValue(encryptedName, value []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return c.valueAEAD.Seal(nonce, nonce, value, encryptedName), nil
}

// DecryptValue reverses EncryptValue.
func (c *PreferenceCipher) DecryptValue(encryptedName, blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, ErrCiphertextTooShort
	}

	value, err := c.valueAEAD.Open(nil, blob[:NonceSize], blob[NonceSize:], encryptedName)
	if err != nil {
		return nil, fmt.Errorf("decrypt value: %w", err)
	}
	return value, nil
}

func (c *PreferenceCipher) syntheticIV(name string) []byte {
	mac := hmac.New(sha256.New, c.nameIVKey)
	mac.Write([]byte(name))
	return mac.Sum(nil)[:NonceSize]
}

func deriveKey(secret []byte, info string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive %s: %w", info, err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
