// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-health-guard/internal/logger"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16

	keyFileExt = ".key"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// softwareKeyProvider keeps keys sealed in memguard enclaves while they are
// in memory and, when dir is set, persists them as 0600 files.
type softwareKeyProvider struct {
	dir string

	mu   sync.Mutex
	keys map[string]*memguard.Enclave

	logger *logger.Logger
}

// NewSoftwareKeyProvider returns a [KeyProvider] backed by memguard enclaves.
// Keys are written to dir (created with 0700 permissions) so they survive
// restarts; an empty dir keeps keys in memory only.
func NewSoftwareKeyProvider(dir string, log *logger.Logger) (KeyProvider, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create key directory: %w", err)
		}
	}

	return &softwareKeyProvider{
		dir:    dir,
		keys:   make(map[string]*memguard.Enclave),
		logger: log,
	}, nil
}

// Seal implements [KeyProvider].
func (p *softwareKeyProvider) Seal(alias string, plaintext, additionalData []byte) ([]byte, []byte, error) {
	gcm, err := p.aead(alias)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, gcm.Seal(nil, nonce, plaintext, additionalData), nil
}

// Open implements [KeyProvider].
func (p *softwareKeyProvider) Open(alias string, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonce
	}
	if len(ciphertext) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	gcm, err := p.aead(alias)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// DeleteKey implements [KeyProvider].
func (p *softwareKeyProvider) DeleteKey(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return ErrInvalidKeyAlias
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.keys, alias)
	if p.dir == "" {
		return nil
	}

	if err := os.Remove(p.keyPath(alias)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove key file: %w", err)
	}

	return nil
}

// aead opens the enclave of alias only for the time needed to expand the AES
// key schedule.
func (p *softwareKeyProvider) aead(alias string) (cipher.AEAD, error) {
	enclave, err := p.enclave(alias)
	if err != nil {
		return nil, err
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

func (p *softwareKeyProvider) enclave(alias string) (*memguard.Enclave, error) {
	if !aliasPattern.MatchString(alias) {
		return nil, ErrInvalidKeyAlias
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if enclave, ok := p.keys[alias]; ok {
		return enclave, nil
	}

	key, err := p.loadOrCreate(alias)
	if err != nil {
		return nil, err
	}

	// NewEnclave wipes key after copying it
	enclave := memguard.NewEnclave(key)
	p.keys[alias] = enclave

	return enclave, nil
}

func (p *softwareKeyProvider) loadOrCreate(alias string) ([]byte, error) {
	if p.dir != "" {
		key, err := os.ReadFile(p.keyPath(alias))
		switch {
		case err == nil:
			if len(key) != KeySize {
				memguard.WipeBytes(key)
				return nil, fmt.Errorf("%w: %s", ErrCorruptedKey, alias)
			}
			return key, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read key file: %w", err)
		}
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	if p.dir != "" {
		if err := writeFileAtomic(p.keyPath(alias), key, 0o600); err != nil {
			memguard.WipeBytes(key)
			return nil, fmt.Errorf("persist key: %w", err)
		}
	}

	p.logger.Info().Str("func", "softwareKeyProvider.loadOrCreate").Str("alias", alias).Msg("generated new key")
	return key, nil
}

func (p *softwareKeyProvider) keyPath(alias string) string {
	return filepath.Join(p.dir, alias+keyFileExt)
}

// writeFileAtomic writes data to a temporary file in the target directory,
// syncs it and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
