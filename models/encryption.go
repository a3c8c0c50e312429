// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedPayload is the output of field encryption: a 12-byte nonce and the
// AES-GCM ciphertext with its 16-byte tag appended.
type EncryptedPayload struct {
	Ciphertext []byte
	Nonce      []byte
}

// Keys of an encrypted field value inside a record.
const (
	EncryptedFieldCiphertext = "encrypted"
	EncryptedFieldNonce      = "iv"
	EncryptedFieldMarker     = "isEncrypted"
)

// Entity names with sensitive fields.
const (
	EntityHealthMetric = "HEALTH_METRIC"
	EntityBiomarker    = "BIOMARKER"
	EntityUser         = "USER"
	EntityMeal         = "MEAL"
	EntitySupplement   = "SUPPLEMENT"
)

// SensitiveFields maps an entity name to the record fields that are encrypted
// before the record is stored or sent anywhere.
var SensitiveFields = map[string][]string{
	EntityHealthMetric: {"value", "metadata", "notes"},
	EntityBiomarker:    {"value", "notes", "testResults"},
	EntityUser:         {"email", "phoneNumber", "medicalNotes"},
	EntityMeal:         {"notes", "healthNotes"},
	EntitySupplement:   {"dosageNotes", "sideEffects"},
}
