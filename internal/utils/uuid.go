// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

const sessionIDPrefix = "sess_"

// NewID returns a time-ordered UUIDv7 string, falling back to a random UUID
// when the clock source fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSessionID returns an opaque session identifier of the form sess_<hex>.
func NewSessionID() string {
	return sessionIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
