// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// envNamespace marks variables that win over their bare names, e.g.
// WELLTRACK_APP_NAME over APP_NAME on hosts where the short names are taken.
const envNamespace = "WELLTRACK_"

func parseEnv(cfg *StructuredConfig) error {
	return parseEnviron(cfg, env.ToMap(os.Environ()))
}

// parseEnviron reads the bare variables into cfg and overlays the namespaced
// ones. Unset variables leave fields zero so the layer merges cleanly over
// defaults and the JSON file.
func parseEnviron(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	var namespaced StructuredConfig
	if err := env.ParseWithOptions(&namespaced, env.Options{Environment: environ, Prefix: envNamespace}); err != nil {
		return fmt.Errorf("read %s environment: %w", envNamespace, err)
	}
	if err := mergo.Merge(cfg, &namespaced, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge %s environment: %w", envNamespace, err)
	}

	return nil
}
