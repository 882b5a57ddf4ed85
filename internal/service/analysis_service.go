// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/sink"
	"github.com/MKhiriev/code-historian-client/internal/telemetry"
	"github.com/MKhiriev/code-historian-client/internal/utils"
	"github.com/MKhiriev/code-historian-client/internal/workers"
	"github.com/MKhiriev/code-historian-client/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type analysisService struct {
	serverAdapter adapter.ServerAdapter
	dialer        adapter.ChannelDialer
	sink          *sink.Sink
	executor      workers.Executor
	reporter      StatusReporter
	analysisCfg   config.ClientAnalysis
	ids           *utils.UUIDGenerator

	mu       sync.Mutex
	launches map[string]*Launch
	sessions map[string]*Launch

	logger *logger.Logger
}

// NewAnalysisService creates the session launcher. Launches run on executor;
// their updates go to updateSink and their outcome to reporter.
func NewAnalysisService(
	serverAdapter adapter.ServerAdapter,
	dialer adapter.ChannelDialer,
	updateSink *sink.Sink,
	executor workers.Executor,
	reporter StatusReporter,
	analysisCfg config.ClientAnalysis,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		serverAdapter: serverAdapter,
		dialer:        dialer,
		sink:          updateSink,
		executor:      executor,
		reporter:      reporter,
		analysisCfg:   analysisCfg,
		ids:           utils.NewUUIDGenerator(),
		launches:      make(map[string]*Launch),
		sessions:      make(map[string]*Launch),
		logger:        logger,
	}
}

// StartAnalysis implements [AnalysisService]. The launch outlives ctx: it
// keeps ctx's values, including the trace, but not its cancellation. Use
// [Launch.Cancel], Cancel or Shutdown to stop it.
func (s *analysisService) StartAnalysis(ctx context.Context, projectPath string, cred models.Credential) *Launch {
	launchID := s.ids.Generate()
	launchCtx, cancel := context.WithCancel(utils.WithLaunchID(context.WithoutCancel(ctx), launchID))
	launch := newLaunch(launchID, projectPath, cancel)

	s.mu.Lock()
	s.launches[launchID] = launch
	s.mu.Unlock()

	err := s.executor.Submit(func(workerCtx context.Context) error {
		stop := context.AfterFunc(workerCtx, cancel)
		defer stop()

		s.run(launchCtx, launch, cred)
		return nil
	})
	if err != nil {
		// the reporter may block until the host UI runs
		go func() {
			s.fail(launch, fmt.Errorf("submit launch: %w", err))
			s.forget(launch)
		}()
	}

	return launch
}

func (s *analysisService) run(ctx context.Context, launch *Launch, cred models.Credential) {
	log := s.logger.WithStr("launch_id", launch.ID())

	ctx, span := telemetry.StartSpan(ctx, "analysis.launch")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("launch panicked")
			s.fail(launch, fmt.Errorf("%w: %v", workers.ErrJobPanicked, r))
		}
		if err := launch.Err(); err != nil && launch.State() == models.LaunchFailed {
			span.RecordError(err)
			span.SetStatus(codes.Error, describeFailure(err))
		}
		s.forget(launch)
	}()

	launch.setState(models.LaunchStarting)

	projectPath, err := validateProjectPath(launch.ProjectPath())
	if err != nil {
		s.fail(launch, err)
		return
	}
	span.SetAttributes(attribute.String("project.path", projectPath))

	req := models.AnalysisRequest{
		ProjectPath:   projectPath,
		MaxDepth:      s.analysisCfg.MaxDepth,
		ExcludedPaths: s.analysisCfg.ExcludedPaths,
	}

	var resp models.AnalysisResponse
	select {
	case out := <-s.serverAdapter.StartAnalysisAsync(ctx, req, cred):
		resp, err = out.Value, out.Err
	case <-ctx.Done():
		s.cancelled(launch)
		return
	}
	if err != nil {
		s.failOrCancel(ctx, launch, fmt.Errorf("start analysis: %w", err))
		return
	}

	sessionID := resp.ID
	if !launch.assignSession(sessionID) {
		s.fail(launch, fmt.Errorf("%w: session id %q cannot be assigned", adapter.ErrProtocol, sessionID))
		return
	}
	span.SetAttributes(attribute.String("session.id", sessionID))
	log = log.WithStr("session_id", sessionID)
	log.Info().Str("status", resp.Status).Msg("analysis accepted")

	sub, err := s.dialer.Open(ctx, sessionID, cred)
	if err != nil {
		s.failOrCancel(ctx, launch, err)
		return
	}
	defer func() { _ = sub.Close() }()

	s.mu.Lock()
	s.sessions[sessionID] = launch
	s.mu.Unlock()

	s.sink.Bind(sessionID)
	defer s.sink.Unbind(sessionID)

	launch.setState(models.LaunchRunning)
	s.reporter.ReportStarted(launch.ID(), sessionID)

	s.pump(ctx, launch, sub, log)
}

// pump forwards channel events to the sink until a terminal event, a broken
// channel or cancellation.
func (s *analysisService) pump(ctx context.Context, launch *Launch, sub adapter.Subscription, log *logger.Logger) {
	updates := s.sink.ForSession(sub.SessionID())

	for {
		select {
		case <-ctx.Done():
			s.cancelled(launch)
			return
		case ev, ok := <-sub.Events():
			if ctx.Err() != nil {
				s.cancelled(launch)
				return
			}
			if !ok {
				if err := sub.Err(); err != nil {
					s.fail(launch, err)
					return
				}
				log.Info().Msg("channel closed without terminal event")
				s.complete(launch)
				return
			}

			switch ev.Kind {
			case models.EventProgress:
				updates.OnProgress(ev.Progress.Percent)
			case models.EventMetrics:
				updates.OnMetrics(string(ev.Metrics.Payload))
			case models.EventCompleted:
				s.complete(launch)
				return
			case models.EventFailed:
				s.fail(launch, fmt.Errorf("%w: %s", ErrAnalysisFailed, ev.Message))
				return
			default:
				log.Warn().Str("kind", string(ev.Kind)).Msg("ignoring unknown event")
			}
		}
	}
}

// Cancel implements [AnalysisService].
func (s *analysisService) Cancel(sessionID string) bool {
	s.mu.Lock()
	launch, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || launch.State().IsFinal() {
		return false
	}

	s.sink.Unbind(sessionID)
	launch.Cancel()
	s.logger.Info().Str("launch_id", launch.ID()).Str("session_id", sessionID).Msg("launch cancel requested")

	return true
}

// Shutdown implements [AnalysisService].
func (s *analysisService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	active := make([]*Launch, 0, len(s.launches))
	for _, launch := range s.launches {
		active = append(active, launch)
	}
	s.mu.Unlock()

	for _, launch := range active {
		launch.Cancel()
	}

	if err := s.executor.Stop(ctx); err != nil {
		return fmt.Errorf("stop workers: %w", err)
	}
	return nil
}

func (s *analysisService) complete(launch *Launch) {
	launch.finish(models.LaunchCompleted, nil, func() {
		s.reporter.ReportCompleted(launch.ID(), launch.SessionID())
	})
}

func (s *analysisService) fail(launch *Launch, err error) {
	launch.finish(models.LaunchFailed, err, func() {
		s.reporter.ReportFailure(launch.ID(), describeFailure(err), err)
	})
}

func (s *analysisService) cancelled(launch *Launch) {
	launch.finish(models.LaunchCancelled, ErrLaunchCancelled, func() {
		s.logger.Info().Str("launch_id", launch.ID()).Msg("launch cancelled")
	})
}

// failOrCancel treats any error observed after the launch was cancelled as
// part of the cancellation.
func (s *analysisService) failOrCancel(ctx context.Context, launch *Launch, err error) {
	if ctx.Err() != nil {
		s.cancelled(launch)
		return
	}
	s.fail(launch, err)
}

func (s *analysisService) forget(launch *Launch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.launches, launch.ID())
	if sessionID := launch.SessionID(); sessionID != "" {
		delete(s.sessions, sessionID)
	}
}

func validateProjectPath(projectPath string) (string, error) {
	projectPath = strings.TrimSpace(projectPath)
	if projectPath == "" {
		return "", fmt.Errorf("%w: project path is empty", ErrConfiguration)
	}
	if !filepath.IsAbs(projectPath) {
		return "", fmt.Errorf("%w: project path %q is not absolute", ErrConfiguration, projectPath)
	}
	return filepath.Clean(projectPath), nil
}
