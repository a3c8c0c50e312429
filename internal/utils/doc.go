// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the adapter and service
// layers: the resty-based HTTP client, bearer/JWT token inspection and
// identifier generation.
package utils
