// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"fmt"
	"os"
	"runtime"
)

// DeviceInfo identifies the host in audit records, e.g. "laptop (linux/amd64)".
func DeviceInfo() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s (%s/%s)", hostname, runtime.GOOS, runtime.GOARCH)
}

// UserAgent builds the user agent string recorded with audit entries.
func UserAgent(appName, version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("%s/%s (%s; %s; %s)", appName, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
