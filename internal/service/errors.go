// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidPIN      = errors.New("pin must be 4 to 12 digits")
	ErrNoPINConfigured = errors.New("no pin configured")
	ErrEmptyUserID     = errors.New("empty user id")

	ErrBiometricUnavailable = errors.New("biometric authentication unavailable")
)
