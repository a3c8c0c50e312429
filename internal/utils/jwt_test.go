// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

func TestSubjectFromJWT(t *testing.T) {
	sub, err := SubjectFromJWT(signedToken(t, "user-42"))
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestSubjectFromJWT_Empty(t *testing.T) {
	_, err := SubjectFromJWT(signedToken(t, ""))
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestSubjectFromJWT_Malformed(t *testing.T) {
	_, err := SubjectFromJWT("not-a-jwt")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"extra spaces", "  Bearer   abc ", "abc", false},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
