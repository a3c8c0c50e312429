// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/adapter"
	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/platform"
	"github.com/MKhiriev/go-health-guard/internal/service"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/workers"
	"github.com/MKhiriev/go-health-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 5 * time.Second

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("guardd").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewFileLogger("guardd", cfg.App.LogFile)
	log.Debug().Str("dsn", cfg.Storage.DB.DSN).Str("backend", cfg.Adapter.BaseURL).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys, err := crypto.NewSoftwareKeyProvider(cfg.Storage.Keys.Dir, log.WithComponent("keys"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key provider")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, keys, log.WithComponent("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	remote, err := adapter.NewRemoteStore(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote store")
	}

	term := newConsole(os.Stdin, os.Stdout, storages.Preferences, remote)
	services := service.NewServices(storages, remote, service.Platform{
		Biometric: platform.NewUnsupportedBiometric(),
		Keys:      keys,
		Prompter:  term,
	}, *cfg, log)
	term.services = services

	if err = services.Security.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("error starting security core")
	}

	bg := workers.NewWorkers(services, cfg.Workers, log.WithComponent("workers"))
	workersDone := make(chan error, 1)
	go func() { workersDone <- bg.Run(ctx) }()

	// the console ends on EOF or "quit"; both stop the daemon
	consoleDone := make(chan struct{})
	go func() {
		term.Run(ctx)
		close(consoleDone)
	}()

	select {
	case <-ctx.Done():
	case <-consoleDone:
		stop()
	}

	if err = <-workersDone; err != nil {
		log.Err(err).Msg("workers stopped with error")
	}
	services.Security.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = services.Audit.Close(shutdownCtx); err != nil {
		log.Err(err).Msg("error closing audit sink")
	}

	log.Info().Msg("guardd stopped")
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
	return info
}
