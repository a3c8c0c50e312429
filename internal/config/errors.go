// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings
	// (for example, a base URL without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing application name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSecurityConfigs indicates invalid audit or scan policy values.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero tick interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
