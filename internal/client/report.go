package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/service"
	"github.com/MKhiriev/code-historian-client/models"
	"github.com/charmbracelet/lipgloss"
)

const shortHashLen = 8

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Underline(true)
	reportKey   = lipgloss.NewStyle().Bold(true)
	reportFaint = lipgloss.NewStyle().Faint(true)
)

// Report prints the requested history and metrics reports once and exits.
type Report struct {
	history service.HistoryService
	query   config.ClientQuery
	cred    models.Credential
	out     io.Writer

	logger *logger.Logger
}

// NewReport returns a Report for the queries selected in appCfg.
func NewReport(history service.HistoryService, appCfg config.ClientApp, out io.Writer, logger *logger.Logger) (*Report, error) {
	if !appCfg.Query.IsSet() {
		return nil, ErrNoQuery
	}

	return &Report{
		history: history,
		query:   appCfg.Query,
		cred:    models.NewCredential(appCfg.APIKey),
		out:     out,
		logger:  logger,
	}, nil
}

// Run implements [Client]. Every selected report is attempted; the
// failures are joined.
func (r *Report) Run(ctx context.Context) error {
	var errs []error

	if file := strings.TrimSpace(r.query.HistoryFile); file != "" {
		history, err := r.history.FileHistory(ctx, file, r.cred)
		if err != nil {
			errs = append(errs, err)
		} else {
			r.printFileHistory(history)
		}
	}

	if r.query.ProjectMetrics {
		metrics, err := r.history.ProjectMetrics(ctx, r.cred)
		if err != nil {
			errs = append(errs, err)
		} else {
			r.printProjectMetrics(metrics)
		}
	}

	if key := strings.TrimSpace(r.query.MetricKey); key != "" {
		values, err := r.history.CustomMetrics(ctx, key, r.cred)
		if err != nil {
			errs = append(errs, err)
		} else {
			r.printCustomMetrics(key, values)
		}
	}

	if r.query.MetricsSummary {
		summary, err := r.history.MetricsSummary(ctx, r.cred)
		if err != nil {
			errs = append(errs, err)
		} else {
			r.printSummary(summary)
		}
	}

	if len(errs) > 0 {
		r.logger.Error().Int("failed", len(errs)).Msg("reports incomplete")
	}
	return errors.Join(errs...)
}

func (r *Report) printFileHistory(h models.FileHistory) {
	r.printf("%s\n", reportTitle.Render("History of "+h.FilePath))
	if len(h.Commits) == 0 {
		r.printf("%s\n\n", reportFaint.Render("no commits"))
		return
	}
	for _, c := range h.Commits {
		r.printf("%s %s %-20s +%d -%d %s\n",
			reportKey.Render(shortHash(c.Hash)), c.Date, c.Author, c.Additions, c.Deletions, firstLine(c.Message))
	}
	r.printf("\n")
}

func (r *Report) printProjectMetrics(m models.ProjectMetrics) {
	r.printf("%s\n", reportTitle.Render("Project metrics"))
	r.printf("%-22s %d\n", reportKey.Render("files"), m.TotalFiles)
	r.printf("%-22s %d\n", reportKey.Render("commits"), m.TotalCommits)
	r.printf("%-22s %d\n", reportKey.Render("authors"), m.TotalAuthors)
	r.printf("%-22s %.2f\n", reportKey.Render("commits per file"), m.AvgCommitsPerFile)
	r.printf("%-22s %.2f\n", reportKey.Render("authors per file"), m.AvgAuthorsPerFile)

	if len(m.Hotspots) > 0 {
		r.printf("%s\n", reportKey.Render("hotspots"))
		for _, h := range m.Hotspots {
			r.printf("  %6.2f %4d changes %3d authors  %s\n", h.Score, h.Changes, h.Authors, h.FilePath)
		}
	}
	r.printf("\n")
}

func (r *Report) printCustomMetrics(key string, values map[string]float64) {
	r.printf("%s\n", reportTitle.Render("Metric "+key))
	if len(values) == 0 {
		r.printf("%s\n\n", reportFaint.Render("no values"))
		return
	}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		r.printf("%s %g\n", reportKey.Render(name), values[name])
	}
	r.printf("\n")
}

func (r *Report) printSummary(s models.MetricsSummary) {
	r.printf("%s\n", reportTitle.Render("Metrics summary"))
	for _, m := range s.Metrics {
		details := ""
		if m.HasDetails {
			details = reportFaint.Render(" (details: -metric " + m.Name + ")")
		}
		r.printf("%s %g%s\n", reportKey.Render(m.Name), m.Value, details)
	}
	r.printf("\n")
}

func (r *Report) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func shortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return line
}
