package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/telemetry"
	"github.com/MKhiriev/code-historian-client/internal/utils"
	"github.com/MKhiriev/code-historian-client/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

const (
	apiKeyHeader    = "X-API-Key"
	requestIDHeader = "X-Request-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

// Send implements [ServerAdapter]. The credential header is attached only
// when req.Credential is non-blank; every request carries a fresh
// X-Request-ID and the trace context of ctx.
func (h *httpServerAdapter) Send(ctx context.Context, req Request) (Response, error) {
	ctx, span := telemetry.StartSpan(ctx, "adapter.send")
	defer span.End()

	requestID := h.ids.Generate()
	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.Path),
		attribute.String("request.id", requestID),
	)

	r := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	for name, value := range req.Headers {
		// the key header comes from req.Credential only
		if strings.EqualFold(name, apiKeyHeader) {
			continue
		}
		r.SetHeader(name, value)
	}
	if req.Credential.IsSet() {
		r.SetHeader(apiKeyHeader, req.Credential.Key())
	}
	if len(req.PathParams) > 0 {
		r.SetPathParams(req.PathParams)
	}
	if len(req.QueryParams) > 0 {
		r.SetQueryParams(req.QueryParams)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

	log := h.logger.With().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Logger()
	if launchID, ok := utils.GetLaunchIDFromContext(ctx); ok {
		log = log.With().Str("launch_id", launchID).Logger()
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		span.RecordError(err)
		log.Err(err).Msg("request failed")
		return Response{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, err)
	}

	out := Response{StatusCode: resp.StatusCode(), Header: resp.Header(), Body: resp.Body()}
	span.SetAttributes(attribute.Int("http.response.status_code", out.StatusCode))

	if err = mapHTTPError(resp); err != nil {
		span.RecordError(err)
		log.Warn().Int("status", out.StatusCode).Msg("request rejected")
		return out, err
	}

	log.Debug().Int("status", out.StatusCode).Msg("request completed")
	return out, nil
}

// SendAsync implements [ServerAdapter].
func (h *httpServerAdapter) SendAsync(ctx context.Context, req Request) <-chan Outcome[Response] {
	return async(ctx, func(ctx context.Context) (Response, error) {
		return h.Send(ctx, req)
	})
}

// StartAnalysis implements [ServerAdapter]. It POSTs req to
// POST /analysis/start and decodes {"id": "..."} from the response. Any
// status other than 200 is a failure wrapping [ErrTransport]; a body that
// cannot be decoded or lacks the id is a failure wrapping [ErrProtocol].
func (h *httpServerAdapter) StartAnalysis(ctx context.Context, req models.AnalysisRequest, cred models.Credential) (models.AnalysisResponse, error) {
	resp, err := h.Send(ctx, Request{
		Method:     http.MethodPost,
		Path:       "/analysis/start",
		Body:       req,
		Credential: cred,
	})
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("start analysis request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.AnalysisResponse{}, fmt.Errorf("start analysis request: %w: %w: status %d",
			ErrTransport, ErrUnexpectedStatus, resp.StatusCode)
	}

	var out models.AnalysisResponse
	if err = decodeJSON(resp.Body, &out); err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("decode start analysis response: %w", err)
	}
	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return models.AnalysisResponse{}, fmt.Errorf("%w: start analysis response carries no session id", ErrProtocol)
	}

	return out, nil
}

// StartAnalysisAsync implements [ServerAdapter].
func (h *httpServerAdapter) StartAnalysisAsync(ctx context.Context, req models.AnalysisRequest, cred models.Credential) <-chan Outcome[models.AnalysisResponse] {
	return async(ctx, func(ctx context.Context) (models.AnalysisResponse, error) {
		return h.StartAnalysis(ctx, req, cred)
	})
}

// FileHistory implements [ServerAdapter]. GET /history/file?path=<filePath>.
func (h *httpServerAdapter) FileHistory(ctx context.Context, filePath string, cred models.Credential) (models.FileHistory, error) {
	var out models.FileHistory
	err := h.getJSON(ctx, Request{
		Method:      http.MethodGet,
		Path:        "/history/file",
		QueryParams: map[string]string{"path": filePath},
		Credential:  cred,
	}, &out)
	if err != nil {
		return models.FileHistory{}, fmt.Errorf("file history: %w", err)
	}
	return out, nil
}

// ProjectMetrics implements [ServerAdapter]. GET /metrics/project.
func (h *httpServerAdapter) ProjectMetrics(ctx context.Context, cred models.Credential) (models.ProjectMetrics, error) {
	var out models.ProjectMetrics
	err := h.getJSON(ctx, Request{Method: http.MethodGet, Path: "/metrics/project", Credential: cred}, &out)
	if err != nil {
		return models.ProjectMetrics{}, fmt.Errorf("project metrics: %w", err)
	}
	return out, nil
}

// CustomMetrics implements [ServerAdapter]. GET /metrics/custom/{key}.
func (h *httpServerAdapter) CustomMetrics(ctx context.Context, metricKey string, cred models.Credential) (map[string]float64, error) {
	var out map[string]float64
	err := h.getJSON(ctx, Request{
		Method:     http.MethodGet,
		Path:       "/metrics/custom/{key}",
		PathParams: map[string]string{"key": metricKey},
		Credential: cred,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("custom metrics %q: %w", metricKey, err)
	}
	return out, nil
}

// MetricsSummary implements [ServerAdapter]. GET /metrics/summary.
func (h *httpServerAdapter) MetricsSummary(ctx context.Context, cred models.Credential) (models.MetricsSummary, error) {
	var out models.MetricsSummary
	err := h.getJSON(ctx, Request{Method: http.MethodGet, Path: "/metrics/summary", Credential: cred}, &out)
	if err != nil {
		return models.MetricsSummary{}, fmt.Errorf("metrics summary: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, req Request, dst any) error {
	resp, err := h.Send(ctx, req)
	if err != nil {
		return err
	}
	return decodeJSON(resp.Body, dst)
}

func decodeJSON(body []byte, dst any) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: empty response body", ErrProtocol)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	return nil
}
