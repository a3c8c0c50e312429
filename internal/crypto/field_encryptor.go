// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"maps"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
)

// FieldKeyAlias is the key provider alias of the field encryption key.
const FieldKeyAlias = "welltrack_encryption_key"

// FieldEncryptor encrypts individual string fields with AES-256-GCM under a
// key held by a [KeyProvider]. It never returns errors: a failed operation
// yields ok == false and a diagnostic log entry.
type FieldEncryptor struct {
	keys   KeyProvider
	alias  string
	logger *logger.Logger
}

// NewFieldEncryptor returns a FieldEncryptor using the [FieldKeyAlias] key.
func NewFieldEncryptor(keys KeyProvider, log *logger.Logger) *FieldEncryptor {
	return &FieldEncryptor{keys: keys, alias: FieldKeyAlias, logger: log}
}

// Encrypt seals plaintext under a fresh nonce.
func (e *FieldEncryptor) Encrypt(plaintext string) (models.EncryptedPayload, bool) {
	nonce, ciphertext, err := e.keys.Seal(e.alias, []byte(plaintext), nil)
	if err != nil {
		e.logger.Err(err).Str("func", "FieldEncryptor.Encrypt").Msg("encryption failed")
		return models.EncryptedPayload{}, false
	}

	return models.EncryptedPayload{Ciphertext: ciphertext, Nonce: nonce}, true
}

// Decrypt authenticates and opens payload. Corrupted data, a wrong nonce or a
// missing key give ok == false.
func (e *FieldEncryptor) Decrypt(payload models.EncryptedPayload) (string, bool) {
	plaintext, err := e.keys.Open(e.alias, payload.Nonce, payload.Ciphertext, nil)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "FieldEncryptor.Decrypt").Msg("decryption failed")
		return "", false
	}

	return string(plaintext), true
}

// EncryptFields returns a copy of record where every listed string field is
// replaced by an encrypted value map. Fields that are absent, not strings or
// already encrypted are left untouched, as are fields whose encryption fails.
func (e *FieldEncryptor) EncryptFields(record map[string]any, fields []string) map[string]any {
	out := maps.Clone(record)
	if out == nil {
		return nil
	}

	for _, field := range fields {
		plaintext, ok := out[field].(string)
		if !ok {
			continue
		}

		payload, ok := e.Encrypt(plaintext)
		if !ok {
			continue
		}

		out[field] = map[string]any{
			models.EncryptedFieldCiphertext: base64.StdEncoding.EncodeToString(payload.Ciphertext),
			models.EncryptedFieldNonce:      base64.StdEncoding.EncodeToString(payload.Nonce),
			models.EncryptedFieldMarker:     true,
		}
	}

	return out
}

// DecryptFields is the inverse of EncryptFields. Only values carrying the
// isEncrypted marker are touched; a value that cannot be decrypted stays
// encrypted.
func (e *FieldEncryptor) DecryptFields(record map[string]any, fields []string) map[string]any {
	out := maps.Clone(record)
	if out == nil {
		return nil
	}

	for _, field := range fields {
		payload, ok := encryptedPayloadOf(out[field])
		if !ok {
			continue
		}

		plaintext, ok := e.Decrypt(payload)
		if !ok {
			continue
		}

		out[field] = plaintext
	}

	return out
}

// EncryptEntity applies EncryptFields with the sensitive fields of entity.
func (e *FieldEncryptor) EncryptEntity(entity string, record map[string]any) map[string]any {
	return e.EncryptFields(record, models.SensitiveFields[entity])
}

// DecryptEntity applies DecryptFields with the sensitive fields of entity.
func (e *FieldEncryptor) DecryptEntity(entity string, record map[string]any) map[string]any {
	return e.DecryptFields(record, models.SensitiveFields[entity])
}

// IsEncryptedValue reports whether v is an encrypted field value.
func IsEncryptedValue(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	marker, _ := m[models.EncryptedFieldMarker].(bool)
	return marker
}

func encryptedPayloadOf(v any) (models.EncryptedPayload, bool) {
	if !IsEncryptedValue(v) {
		return models.EncryptedPayload{}, false
	}
	m := v.(map[string]any)

	ciphertextB64, ok := m[models.EncryptedFieldCiphertext].(string)
	if !ok {
		return models.EncryptedPayload{}, false
	}
	nonceB64, ok := m[models.EncryptedFieldNonce].(string)
	if !ok {
		return models.EncryptedPayload{}, false
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return models.EncryptedPayload{}, false
	}
	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil {
		return models.EncryptedPayload{}, false
	}

	return models.EncryptedPayload{Ciphertext: ciphertext, Nonce: nonce}, true
}
