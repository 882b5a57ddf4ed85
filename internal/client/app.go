package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/service"
	"github.com/MKhiriev/code-historian-client/internal/sink"
	"github.com/MKhiriev/code-historian-client/models"
)

const shutdownTimeout = 5 * time.Second

// App runs one analysis from start to finish.
type App struct {
	services   *service.ClientServices
	frontend   Frontend
	updateSink *sink.Sink
	appCfg     config.ClientApp

	logger *logger.Logger
}

// NewApp validates the application settings and assembles an App. The
// frontend must be the same value the services report to.
func NewApp(services *service.ClientServices, frontend Frontend, updateSink *sink.Sink, appCfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if strings.TrimSpace(appCfg.ProjectPath) == "" {
		return nil, ErrNoProjectPath
	}

	return &App{
		services:   services,
		frontend:   frontend,
		updateSink: updateSink,
		appCfg:     appCfg,
		logger:     logger,
	}, nil
}

// Run implements [Client]. It returns nil when the analysis completed, the
// launch error when it failed, and the frontend's error when the user or
// the process abandoned it.
func (a *App) Run(ctx context.Context) error {
	a.updateSink.Attach(a.frontend)
	defer a.updateSink.Detach()

	launch := a.services.AnalysisService.StartAnalysis(ctx, a.appCfg.ProjectPath, models.NewCredential(a.appCfg.APIKey))
	log := a.logger.WithStr("launch_id", launch.ID())
	log.Info().Str("project", a.appCfg.ProjectPath).Msg("analysis launched")

	runErr := a.frontend.Run(ctx)
	if runErr == nil && ctx.Err() != nil && !launch.State().IsFinal() {
		runErr = ErrInterrupted
	}
	if runErr != nil {
		log.Info().Err(runErr).Msg("abandoning launch")
		launch.Cancel()
	}

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := launch.Wait(waitCtx); err != nil && !errors.Is(err, service.ErrLaunchCancelled) {
		log.Debug().Err(err).Str("state", string(launch.State())).Msg("launch ended")
	}
	if err := a.services.AnalysisService.Shutdown(waitCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown incomplete")
	}

	if runErr != nil {
		return runErr
	}

	switch launch.State() {
	case models.LaunchCompleted:
		return nil
	case models.LaunchFailed:
		return fmt.Errorf("analysis of %s: %w", a.appCfg.ProjectPath, launch.Err())
	default:
		return fmt.Errorf("analysis of %s ended in state %s: %w", a.appCfg.ProjectPath, launch.State(), ErrInterrupted)
	}
}
