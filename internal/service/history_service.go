package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/models"
)

type historyService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewHistoryService creates a [HistoryService] backed by serverAdapter.
func NewHistoryService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) HistoryService {
	return &historyService{serverAdapter: serverAdapter, logger: logger}
}

func (h *historyService) FileHistory(ctx context.Context, filePath string, cred models.Credential) (models.FileHistory, error) {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return models.FileHistory{}, fmt.Errorf("%w: file path is empty", ErrConfiguration)
	}

	history, err := h.serverAdapter.FileHistory(ctx, filepath.Clean(filePath), cred)
	if err != nil {
		h.logger.Err(err).Str("file", filePath).Msg("failed to load file history")
		return models.FileHistory{}, fmt.Errorf("load file history: %w", err)
	}
	return history, nil
}

func (h *historyService) ProjectMetrics(ctx context.Context, cred models.Credential) (models.ProjectMetrics, error) {
	metrics, err := h.serverAdapter.ProjectMetrics(ctx, cred)
	if err != nil {
		h.logger.Err(err).Msg("failed to load project metrics")
		return models.ProjectMetrics{}, fmt.Errorf("load project metrics: %w", err)
	}
	return metrics, nil
}

func (h *historyService) CustomMetrics(ctx context.Context, metricKey string, cred models.Credential) (map[string]float64, error) {
	metricKey = strings.TrimSpace(metricKey)
	if metricKey == "" {
		return nil, fmt.Errorf("%w: metric key is empty", ErrConfiguration)
	}

	values, err := h.serverAdapter.CustomMetrics(ctx, metricKey, cred)
	if err != nil {
		h.logger.Err(err).Str("metric", metricKey).Msg("failed to load custom metrics")
		return nil, fmt.Errorf("load custom metric %q: %w", metricKey, err)
	}
	return values, nil
}

func (h *historyService) MetricsSummary(ctx context.Context, cred models.Credential) (models.MetricsSummary, error) {
	summary, err := h.serverAdapter.MetricsSummary(ctx, cred)
	if err != nil {
		h.logger.Err(err).Msg("failed to load metrics summary")
		return models.MetricsSummary{}, fmt.Errorf("load metrics summary: %w", err)
	}
	return summary, nil
}
