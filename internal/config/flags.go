// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-d database DSN
//	-cache-dir cache root directory
//	-files-dir files root directory
//	-keys-dir key provider directory
//	-c/-config json file path with configs
//	-log-file diagnostic log file
//	-app-version application version
//	-remote-url managed backend base URL
//	-remote-api-key managed backend api key
//	-remote-token bearer token of the signed-in user
//	-request-timeout request timeout (e.g., "15s")
//	-audit-retention-days audit retention in days
//	-audit-workers number of audit queue workers
//	-check-interval minimum time between security scans (e.g., "24h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var cacheDir, filesDir, keysDir string
	var jsonConfigPath string
	var logFile, appVersion string
	var remoteURL, remoteAPIKey, remoteToken string
	var requestTimeout time.Duration
	var auditRetentionDays, auditWorkers int
	var checkInterval time.Duration

	fs := flag.NewFlagSet("guardd", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cacheDir, "cache-dir", "", "Cache root directory")
	fs.StringVar(&filesDir, "files-dir", "", "Files root directory")
	fs.StringVar(&keysDir, "keys-dir", "", "Key provider directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Diagnostic log file")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&remoteURL, "remote-url", "", "Managed backend base URL")
	fs.StringVar(&remoteAPIKey, "remote-api-key", "", "Managed backend api key")
	fs.StringVar(&remoteToken, "remote-token", "", "Bearer token of the signed-in user")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&auditRetentionDays, "audit-retention-days", 0, "Audit retention in days")
	fs.IntVar(&auditWorkers, "audit-workers", 0, "Number of audit queue workers")
	fs.DurationVar(&checkInterval, "check-interval", 0, "Minimum time between security scans (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: appVersion,
			LogFile: logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{CacheDir: cacheDir, FilesDir: filesDir},
			Keys:  Keys{Dir: keysDir},
		},
		Adapter: Adapter{
			BaseURL:        remoteURL,
			APIKey:         remoteAPIKey,
			AccessToken:    remoteToken,
			RequestTimeout: requestTimeout,
		},
		Security: Security{
			AuditRetentionDays: auditRetentionDays,
			AuditWorkers:       auditWorkers,
			CheckInterval:      checkInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
