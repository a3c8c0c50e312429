// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Key helpers for secrets kept in Preferences.

const (
	authTokenKeyPrefix     = "auth_token_"
	biometricKeyPrefix     = "biometric_key_"
	encryptionKeyKeyPrefix = "encryption_key_"
)

// AuthTokenKey is the slot holding the session token of userID.
func AuthTokenKey(userID string) string {
	return UserKeyPrefix(userID) + authTokenKeyPrefix + userID
}

// BiometricKeyKey is the slot holding the biometric enrolment of userID.
func BiometricKeyKey(userID string) string {
	return UserKeyPrefix(userID) + biometricKeyPrefix + userID
}

// EncryptionKeyKey is the slot holding metadata of the key named keyID. It is
// not owned by any user.
func EncryptionKeyKey(keyID string) string {
	return encryptionKeyKeyPrefix + keyID
}

// UserKeyPrefix is the prefix shared by every preference owned by userID.
// Removing all keys with this prefix forgets the user.
func UserKeyPrefix(userID string) string {
	return "user_" + userID + "_"
}
