// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/client"
	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/service"
	"github.com/MKhiriev/code-historian-client/internal/sink"
	"github.com/MKhiriev/code-historian-client/internal/telemetry"
	"github.com/MKhiriev/code-historian-client/internal/tui"
	"github.com/MKhiriev/code-historian-client/internal/workers"
	"github.com/MKhiriev/code-historian-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitFailed      = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return exitFailed
	}

	log := logger.NewClientLogger("historian-client", cfg.App.LogFile)

	shutdownTracing, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: info.BuildVersion(),
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Error().Err(err).Msg("init telemetry")
		return exitFailed
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("flush traces")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return exitFailed
	}

	dialer, err := adapter.NewChannelDialer(cfg.Channel, cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create channel dialer")
		return exitFailed
	}

	updateSink := sink.New(log)
	pool := workers.NewPool(cfg.Workers, log)

	if cfg.App.Query.IsSet() {
		services := service.NewClientServices(cfg, serverAdapter, dialer, updateSink, pool, nil, log)
		return runReport(ctx, services.HistoryService, cfg.App, log)
	}

	var frontend client.Frontend
	if cfg.App.Plain {
		fmt.Print(info)
		frontend = client.NewConsole(os.Stdout)
	} else {
		frontend = tui.New(cfg.App.ProjectPath, info, log)
	}

	services := service.NewClientServices(cfg, serverAdapter, dialer, updateSink, pool, frontend, log)

	app, err := client.NewApp(services, frontend, updateSink, cfg.App, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app")
		fmt.Fprintln(os.Stderr, err)
		return exitFailed
	}

	err = app.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrUserQuit), errors.Is(err, client.ErrInterrupted):
		log.Info().Err(err).Msg("analysis abandoned")
		return exitInterrupted
	default:
		log.Error().Err(err).Msg("client run error")
		return exitFailed
	}
}

func runReport(ctx context.Context, history service.HistoryService, appCfg config.ClientApp, log *logger.Logger) int {
	report, err := client.NewReport(history, appCfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init report")
		return exitFailed
	}

	if err = report.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailed
	}
	return 0
}
