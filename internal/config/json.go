// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			CacheDir string `json:"cache_dir"`
			FilesDir string `json:"files_dir"`
		} `json:"files,omitempty"`

		Keys struct {
			Dir string `json:"dir"`
		} `json:"keys,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		AccessToken    string   `json:"access_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Security struct {
		AuditRetentionDays int      `json:"audit_retention_days"`
		AuditQueueSize     int      `json:"audit_queue_size"`
		AuditWorkers       int      `json:"audit_workers"`
		CheckInterval      Duration `json:"check_interval"`
	} `json:"security,omitempty"`

	Workers struct {
		SecurityCheckTick      Duration `json:"security_check_tick"`
		AuditRetentionInterval Duration `json:"audit_retention_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{
				CacheDir: jsonCfg.Storage.Files.CacheDir,
				FilesDir: jsonCfg.Storage.Files.FilesDir,
			},
			Keys: Keys{Dir: jsonCfg.Storage.Keys.Dir},
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			APIKey:         jsonCfg.Adapter.APIKey,
			AccessToken:    jsonCfg.Adapter.AccessToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Security: Security{
			AuditRetentionDays: jsonCfg.Security.AuditRetentionDays,
			AuditQueueSize:     jsonCfg.Security.AuditQueueSize,
			AuditWorkers:       jsonCfg.Security.AuditWorkers,
			CheckInterval:      time.Duration(jsonCfg.Security.CheckInterval),
		},
		Workers: Workers{
			SecurityCheckTick:      time.Duration(jsonCfg.Workers.SecurityCheckTick),
			AuditRetentionInterval: time.Duration(jsonCfg.Workers.AuditRetentionInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
