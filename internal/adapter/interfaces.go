// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the managed backend that stores the
// user's cloud copy.
//
// The primary abstraction is [RemoteStore], which decouples the deletion flow
// from the underlying protocol. [NewHTTPRemoteStore] talks to a
// PostgREST-style API over HTTP; [NewDisabledRemoteStore] is used when no
// backend is configured.
//
// Failed deletions are reported with the sentinels of errors.go
// ([ErrRateLimited] for 429, [ErrBackendUnavailable] for 503 and 504) so the
// deletion service can match them with [errors.Is]. Deleting an account the
// auth API no longer knows is not an error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore deletes the cloud copy of a user's data.
type RemoteStore interface {
	// SetToken replaces the bearer token used for subsequent requests.
	SetToken(token string)

	// DeleteUserAccount removes the backend account of userID together with
	// everything the backend cascades from it.
	DeleteUserAccount(ctx context.Context, userID string) error

	// DeleteUserData removes the rows of one data category owned by userID.
	DeleteUserData(ctx context.Context, userID string, category models.DataCategory) error
}
