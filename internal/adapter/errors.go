// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from backend HTTP status codes. Callers match them
// with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrBackendUnavailable  = errors.New("backend unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrRemoteDisabled is returned by the disabled store when no backend URL
	// is configured.
	ErrRemoteDisabled = errors.New("remote backend not configured")

	// ErrSubjectMismatch is returned when the configured access token belongs
	// to a different user than the one being deleted.
	ErrSubjectMismatch = errors.New("access token subject does not match user")

	// ErrEmptyUserID is returned when a request names no user.
	ErrEmptyUserID = errors.New("empty user id")

	// ErrUnknownCategory is returned for a data category without remote table.
	ErrUnknownCategory = errors.New("unknown data category")
)
