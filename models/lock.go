// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LockState is a snapshot of the session lock. IsLocked and UnlockRequired are
// always equal and both false while app lock is disabled.
type LockState struct {
	IsLocked       bool
	UnlockRequired bool
	// LastUnlock is the epoch-millisecond time of the last successful unlock.
	LastUnlock int64
}

// Lock timeout bounds in minutes.
const (
	MinLockTimeoutMinutes     = 1
	MaxLockTimeoutMinutes     = 60
	DefaultLockTimeoutMinutes = 5
)
